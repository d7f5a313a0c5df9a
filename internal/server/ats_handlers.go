package server

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rgehrsitz/ctcgo/internal/ats"
)

type resumeRequest struct {
	ResumeText string `json:"resumeText"`
}

type enhanceRequest struct {
	CheckID    string `json:"checkId"`
	ResumeText string `json:"resumeText"`
}

func (s *Server) atsCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		fh, err := c.FormFile("file")
		if err != nil {
			badRequest(c, "No file uploaded")
			return
		}
		if fh.Size > s.Ats.MaxFileSize {
			s.fail(c, "atsCheck", ats.ErrFileTooLarge)
			return
		}
		f, err := fh.Open()
		if err != nil {
			s.fail(c, "atsCheck", err)
			return
		}
		defer f.Close()
		data, err := io.ReadAll(io.LimitReader(f, s.Ats.MaxFileSize+1))
		if err != nil {
			s.fail(c, "atsCheck", err)
			return
		}
		out, err := s.Ats.CheckFile(ctx, userID(c), data)
		if err != nil {
			s.fail(c, "atsCheck", err)
			return
		}
		c.JSON(http.StatusOK, out)
		return
	}

	var req resumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid JSON format: "+err.Error())
		return
	}
	out, err := s.Ats.CheckText(ctx, userID(c), req.ResumeText)
	if err != nil {
		s.fail(c, "atsCheck", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) atsHistory(c *gin.Context) {
	h, err := s.Ats.History(c.Request.Context(), userID(c))
	if err != nil {
		s.fail(c, "atsHistory", err)
		return
	}
	c.JSON(http.StatusOK, h)
}

func (s *Server) atsGet(c *gin.Context) {
	check, err := s.Ats.GetCheck(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		s.fail(c, "atsGet", err)
		return
	}
	c.JSON(http.StatusOK, check)
}

func (s *Server) atsEnhance(c *gin.Context) {
	var req enhanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid JSON format: "+err.Error())
		return
	}
	if req.CheckID == "" {
		badRequest(c, "checkId is required")
		return
	}
	out, err := s.Ats.Enhance(c.Request.Context(), userID(c), req.CheckID, req.ResumeText)
	if err != nil {
		s.fail(c, "atsEnhance", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) atsUsage(c *gin.Context) {
	status, err := s.Ats.Usage(c.Request.Context(), userID(c))
	if err != nil {
		s.fail(c, "atsUsage", err)
		return
	}
	c.JSON(http.StatusOK, status)
}
