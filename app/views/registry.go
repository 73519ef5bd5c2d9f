package views

import (
	"fmt"
	"strconv"
	"time"

	"paylens/app/agg"
	"paylens/app/dates"
	"paylens/app/roles"
)

// Package views turns aggregation outputs into the dashboard's widget
// payloads. Each view declares the roles it requires; the registry only
// attempts a view when every required role resolved, so "column missing"
// means "widget omitted", never an error. This replaces per-widget
// existence conditionals with one declarative table.

// Context carries everything a view builder may read. Filtered is the
// session's current view of the data; Original is the unfiltered table,
// needed only by the projection (a whole-population trend by design).
type Context struct {
	Filtered *dates.Normalized
	Original *dates.Normalized
	Roles    *roles.RoleMap
	Now      time.Time
}

// Builder computes one view's payload. A nil payload omits the view even
// when its required roles resolved (used by views with data-dependent
// applicability, like the band trend).
type Builder func(ctx *Context) interface{}

// View is one entry in the registry.
type View struct {
	Name     string
	Requires []roles.Role
	Build    Builder
}

// Registry lists every dashboard view. Order matches the dashboard
// layout top to bottom.
var Registry = []View{
	{
		Name:     "projection",
		Requires: []roles.Role{roles.Salary},
		Build:    buildProjection,
	},
	{
		Name:     "salary_distribution",
		Requires: []roles.Role{roles.Salary, roles.Department},
		Build: func(ctx *Context) interface{} {
			h := agg.SalaryDistribution(ctx.Filtered, ctx.Roles, agg.DefaultHistogramBins)
			if h == nil {
				return nil
			}
			return h
		},
	},
	{
		Name:     "country_salary",
		Requires: []roles.Role{roles.Salary, roles.Country},
		Build: func(ctx *Context) interface{} {
			// Choropleth input: mean salary and employee count per country
			stats := agg.GroupStats(ctx.Filtered, ctx.Roles, roles.Country)
			if len(stats) == 0 {
				return nil
			}
			return stats
		},
	},
	{
		Name:     "department_share",
		Requires: []roles.Role{roles.Department},
		Build: func(ctx *Context) interface{} {
			counts := agg.CategoryCounts(ctx.Filtered, ctx.Roles, roles.Department, 0)
			if len(counts) == 0 {
				return nil
			}
			return pieFromCounts("Employee Distribution by Department", counts)
		},
	},
	{
		Name:     "gender_pay",
		Requires: []roles.Role{roles.Salary, roles.Gender},
		Build: func(ctx *Context) interface{} {
			stats := agg.GroupStats(ctx.Filtered, ctx.Roles, roles.Gender)
			if len(stats) == 0 {
				return nil
			}
			return barFromGroupMeans("Gender Pay Analysis", "Gender", stats)
		},
	},
	{
		Name:     "country_share",
		Requires: []roles.Role{roles.Country},
		Build: func(ctx *Context) interface{} {
			counts := agg.CategoryCounts(ctx.Filtered, ctx.Roles, roles.Country, 10)
			if len(counts) == 0 {
				return nil
			}
			return barFromCounts("Employee Distribution by Country", "Country", counts)
		},
	},
	{
		Name:     "education_pay",
		Requires: []roles.Role{roles.Salary, roles.Education},
		Build: func(ctx *Context) interface{} {
			stats := agg.SortByMeanDesc(agg.GroupStats(ctx.Filtered, ctx.Roles, roles.Education))
			if len(stats) == 0 {
				return nil
			}
			return barFromGroupMeans("Salary by Education Level", "Education", stats)
		},
	},
	{
		// Band trend needs Salary plus whichever continuous role is
		// active; experience wins over age, so applicability is decided
		// in the builder rather than by Requires alone.
		Name:     "band_trend",
		Requires: []roles.Role{roles.Salary},
		Build:    buildBandTrend,
	},
	{
		Name:     "annual_trend",
		Requires: []roles.Role{roles.Salary},
		Build: func(ctx *Context) interface{} {
			stats := agg.AnnualMeans(ctx.Filtered, ctx.Roles)
			if len(stats) == 0 {
				return nil
			}
			data := make([]ChartPoint, 0, len(stats))
			for _, s := range stats {
				data = append(data, ChartPoint{Label: strconv.Itoa(s.Year), Value: s.Mean})
			}
			return &ChartConfig{
				ChartType: "line",
				Title:     "Average Salary Trend by Year",
				XAxis:     "Year",
				YAxis:     "Average Salary",
				Series:    []ChartSeries{{Name: "Average Salary", Data: data}},
			}
		},
	},
}

func buildProjection(ctx *Context) interface{} {
	points := agg.ProjectFromTable(ctx.Original, ctx.Roles,
		agg.DefaultGrowthRate, agg.DefaultHorizonYears, ctx.Now.Year())
	if points == nil {
		return nil
	}
	data := make([]ChartPoint, 0, len(points))
	for _, p := range points {
		data = append(data, ChartPoint{Label: strconv.Itoa(p.Year), Value: p.Salary})
	}
	return &ChartConfig{
		ChartType: "line",
		Title:     fmt.Sprintf("Expected Average Annual Salary Growth (%.0f%% yearly)", agg.DefaultGrowthRate*100),
		XAxis:     "Year",
		YAxis:     "Average Salary",
		Series:    []ChartSeries{{Name: "Projected Salary", Data: data}},
	}
}

func buildBandTrend(ctx *Context) interface{} {
	banding, ok := agg.ActiveBanding(ctx.Roles)
	if !ok {
		return nil
	}
	stats := agg.BandMeans(ctx.Filtered, ctx.Roles, banding)
	if len(stats) == 0 {
		return nil
	}
	switch banding.Role {
	case roles.Experience:
		return lineFromBands("Average Salary by Experience Level", "Experience Level", stats)
	default:
		return lineFromBands("Average Salary by Age Group", "Age Group", stats)
	}
}

// BuildAll runs every applicable view and returns the payloads by view
// name. Views with unresolved required roles, or whose builder returned
// nil, are absent from the result.
func BuildAll(ctx *Context) map[string]interface{} {
	out := make(map[string]interface{})
	for _, v := range Registry {
		if !ctx.Roles.Has(v.Requires...) {
			continue
		}
		if payload := v.Build(ctx); payload != nil {
			out[v.Name] = payload
		}
	}
	return out
}
