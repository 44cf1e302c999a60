//go:build !floateq

// Command floateqexample serves approximate comparisons of positions over
// HTTP. Run "go generate ./..." first.
package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"example.com/floateqexample/geo"
	"github.com/bcliden/floateq"
)

type checkRequest struct {
	Got     geo.Fix `json:"got"`
	Want    geo.Fix `json:"want"`
	MaxDiff geo.Fix `json:"max_diff"`
}

type checkResponse struct {
	Equal   bool   `json:"equal"`
	Explain string `json:"explain,omitempty"`
}

type routeRequest struct {
	Got     geo.Route `json:"got"`
	Want    geo.Route `json:"want"`
	MaxUlps uint64    `json:"max_ulps"`
}

func main() {
	e := echo.New()
	e.HideBanner = true

	// POST /fix compares two fixes under the rmax policy.
	e.POST("/fix", func(c echo.Context) error {
		var req checkRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}

		res := checkResponse{Equal: req.Got.EqRmax(req.Want, req.MaxDiff)}
		if !res.Equal {
			res.Explain = floateq.Explain(floateq.Rmax, req.Got, req.Want, req.MaxDiff)
		}
		return c.JSON(http.StatusOK, res)
	})

	// POST /route compares two routes waypoint by waypoint in ULPs.
	e.POST("/route", func(c echo.Context) error {
		var req routeRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}

		res := checkResponse{Equal: req.Got.EqUlpsAll(req.Want, req.MaxUlps)}
		if !res.Equal {
			res.Explain = floateq.ExplainUlps(req.Got, req.Want, req.Got.DebugUlpsAllEpsilon(req.Want, req.MaxUlps))
		}
		return c.JSON(http.StatusOK, res)
	})

	e.Logger.Fatal(e.Start(":8080"))
}
