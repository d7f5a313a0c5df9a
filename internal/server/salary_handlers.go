package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/rgehrsitz/ctcgo/internal/store"
)

const (
	cityKind        = store.KindCity
	companyKind     = store.KindCompany
	designationKind = store.KindDesignation
)

func (s *Server) calculate(c *gin.Context) {
	var input domain.SalaryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Invalid JSON format: "+err.Error())
		return
	}
	b, err := s.Salary.Calculate(c.Request.Context(), userID(c), input)
	if err != nil {
		s.fail(c, "calculate", err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (s *Server) history(c *gin.Context) {
	h, err := s.Salary.History(c.Request.Context(), userID(c))
	if err != nil {
		s.fail(c, "history", err)
		return
	}
	c.JSON(http.StatusOK, h)
}

func (s *Server) allCalculations(c *gin.Context) {
	all, err := s.Salary.All(c.Request.Context())
	if err != nil {
		s.fail(c, "all calculations", err)
		return
	}
	c.JSON(http.StatusOK, all)
}

func (s *Server) listCityTax(c *gin.Context) {
	list, err := s.Salary.ListCityTax(c.Request.Context())
	if err != nil {
		s.fail(c, "listCityTax", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) getCityTax(c *gin.Context) {
	p, err := s.Salary.GetCityTax(c.Request.Context(), c.Param("city"))
	if err != nil {
		s.fail(c, "getCityTax", err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) createCityTax(c *gin.Context) {
	var p domain.CityTaxProfile
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, "Invalid JSON format: "+err.Error())
		return
	}
	created, err := s.Salary.CreateCityTax(c.Request.Context(), p)
	if err != nil {
		s.fail(c, "createCityTax", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) updateCityTax(c *gin.Context) {
	var p domain.CityTaxProfile
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, "Invalid JSON format: "+err.Error())
		return
	}
	updated, err := s.Salary.UpdateCityTax(c.Request.Context(), c.Param("city"), p)
	if err != nil {
		s.fail(c, "updateCityTax", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteCityTax(c *gin.Context) {
	if err := s.Salary.DeleteCityTax(c.Request.Context(), c.Param("city")); err != nil {
		s.fail(c, "deleteCityTax", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) reference(kind store.ReferenceKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		names, err := s.Salary.Reference(c.Request.Context(), kind)
		if err != nil {
			s.fail(c, "reference", err)
			return
		}
		c.JSON(http.StatusOK, names)
	}
}

func (s *Server) statistics(c *gin.Context) {
	st, err := s.Stats.Compute(c.Request.Context())
	if err != nil {
		s.fail(c, "statistics", err)
		return
	}
	c.JSON(http.StatusOK, st)
}
