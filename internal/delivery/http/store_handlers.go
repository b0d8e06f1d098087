package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
	"github.com/yourusername/hardware-storefront/internal/domain/repository"
	"github.com/yourusername/hardware-storefront/internal/usecase"
)

func (s *Server) getCompany(c *gin.Context) {
	company, err := s.svc.Store.Company(c)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, company)
}

func (s *Server) updateCompany(c *gin.Context) {
	var req entity.Company
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json")
		return
	}
	company, err := s.svc.Store.UpdateCompany(c, req)
	if err != nil {
		fail(c, err)
		return
	}
	s.audit(c, "update_company", company.Name)
	ok(c, http.StatusOK, company)
}

func (s *Server) listSlides(c *gin.Context) {
	activeOnly := true
	if raw := c.Query("active"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			badRequest(c, "invalid active flag")
			return
		}
		activeOnly = parsed
	}
	slides, err := s.svc.Store.Slides(c, activeOnly)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, slides)
}

func (s *Server) getSlide(c *gin.Context) {
	slide, err := s.svc.Store.Slide(c, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, slide)
}

func (s *Server) createSlide(c *gin.Context) {
	var req entity.CarouselSlide
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json")
		return
	}
	slide, err := s.svc.Store.CreateSlide(c, req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, slide)
}

func (s *Server) updateSlide(c *gin.Context) {
	var req entity.CarouselSlide
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json")
		return
	}
	req.ID = c.Param("id")
	slide, err := s.svc.Store.UpdateSlide(c, req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, slide)
}

func (s *Server) deleteSlide(c *gin.Context) {
	if err := s.svc.Store.DeleteSlide(c, c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) reorderSlides(c *gin.Context) {
	var req idsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json")
		return
	}
	slides, err := s.svc.Store.Reorder(c, req.IDs)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, slides)
}

func (s *Server) getSettings(c *gin.Context) {
	settings, err := s.svc.Store.Settings(c)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, settings)
}

func (s *Server) updateSettings(c *gin.Context) {
	var req entity.Settings
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json")
		return
	}
	settings, err := s.svc.Store.MergeSettings(c, req)
	if err != nil {
		fail(c, err)
		return
	}
	s.audit(c, "update_settings", strconv.Itoa(len(req))+" keys")
	ok(c, http.StatusOK, settings)
}

func (s *Server) createOrder(c *gin.Context) {
	var req usecase.OrderDraft
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json")
		return
	}
	// mijoz sessiyasi bo'lsa buyurtma unga bog'lanadi
	req.CustomerID = ""
	if session := currentSession(c); session != nil && session.Role == entity.RoleCustomer {
		req.CustomerID = session.Subject
	}

	order, err := s.svc.Orders.Create(c, req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, order)
}

func (s *Server) listOrders(c *gin.Context) {
	orders, err := s.svc.Orders.List(c, entity.OrderStatus(c.Query("status")))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, orders)
}

// getOrder admin yoki buyurtma egasi uchun
func (s *Server) getOrder(c *gin.Context) {
	order, err := s.svc.Orders.Get(c, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	session := currentSession(c)
	if session.Role != entity.RoleAdmin && order.CustomerID != session.Subject {
		fail(c, repository.ErrNotFound)
		return
	}
	ok(c, http.StatusOK, order)
}

type statusReq struct {
	Status entity.OrderStatus `json:"status"`
}

func (s *Server) updateOrderStatus(c *gin.Context) {
	var req statusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json")
		return
	}
	order, err := s.svc.Orders.UpdateStatus(c, c.Param("id"), req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	s.audit(c, "order_status", order.ID+" -> "+string(order.Status))
	ok(c, http.StatusOK, order)
}
