package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
	"github.com/yourusername/hardware-storefront/internal/usecase"
)

type compatibleReq struct {
	Category entity.HardwareCategory            `json:"category"`
	Selected map[entity.HardwareCategory]string `json:"selected"`
}

type generateReq struct {
	Budget float64                  `json:"budget"`
	Type   entity.ConfigurationType `json:"type"`
}

type wizardReq struct {
	Type     entity.ConfigurationType `json:"type"`
	ItemID   string                   `json:"itemId"`
	Step     *int                     `json:"step"`
	Category entity.HardwareCategory  `json:"category"`
}

func (s *Server) compatible(c *gin.Context) {
	var req compatibleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json")
		return
	}
	items, err := s.svc.Builder.Compatible(c, req.Category, req.Selected)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, items)
}

func (s *Server) generate(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json")
		return
	}
	allocation, err := s.svc.Builder.Generate(c, req.Budget, req.Type)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, allocation)
}

func (s *Server) startWizard(c *gin.Context) {
	var req wizardReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json")
		return
	}
	state, err := s.svc.Builder.StartWizard(c, req.Type)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, state)
}

func (s *Server) getWizard(c *gin.Context) {
	state, err := s.svc.Builder.Wizard(c, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, state)
}

func (s *Server) closeWizard(c *gin.Context) {
	if err := s.svc.Builder.CloseWizard(c, c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) selectInWizard(c *gin.Context) {
	var req wizardReq
	if err := c.ShouldBindJSON(&req); err != nil || req.ItemID == "" {
		badRequest(c, "itemId is required")
		return
	}
	state, err := s.svc.Builder.SelectInWizard(c, c.Param("id"), req.ItemID)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, state)
}

func (s *Server) gotoStep(c *gin.Context) {
	var req wizardReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Step == nil {
		badRequest(c, "step is required")
		return
	}
	state, err := s.svc.Builder.GoToStep(c, c.Param("id"), *req.Step)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, state)
}

func (s *Server) deselect(c *gin.Context) {
	var req wizardReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json")
		return
	}
	state, err := s.svc.Builder.Deselect(c, c.Param("id"), req.Category)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, state)
}

func (s *Server) extras(c *gin.Context) {
	var req usecase.ExtraAction
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json")
		return
	}
	state, err := s.svc.Builder.Extras(c, c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, state)
}

func (s *Server) saveWizard(c *gin.Context) {
	var req usecase.ProductOverrides
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid json")
			return
		}
	}
	product, err := s.svc.Builder.SaveWizard(c, c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	s.audit(c, "save_configuration", product.ID)
	ok(c, http.StatusCreated, product)
}
