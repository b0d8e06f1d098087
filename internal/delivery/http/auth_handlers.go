package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/hardware-storefront/internal/usecase"
)

type credentialsReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) adminLogin(c *gin.Context) {
	var req credentialsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json")
		return
	}
	session, err := s.svc.Admins.Login(c, req.Username, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, session)
}

func (s *Server) logout(c *gin.Context) {
	if err := s.svc.Admins.Logout(c, bearerToken(c)); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"loggedOut": true})
}

func (s *Server) listAdmins(c *gin.Context) {
	admins, err := s.svc.Admins.ListAdmins(c)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, admins)
}

func (s *Server) createAdmin(c *gin.Context) {
	var req credentialsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json")
		return
	}
	admin, err := s.svc.Admins.CreateAdmin(c, subject(c), req.Username, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, admin)
}

func (s *Server) deleteAdmin(c *gin.Context) {
	if err := s.svc.Admins.DeleteAdmin(c, subject(c), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) adminActions(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			badRequest(c, "invalid limit")
			return
		}
		limit = parsed
	}
	actions, err := s.svc.Admins.Actions(c, limit)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, actions)
}

func (s *Server) registerCustomer(c *gin.Context) {
	var req usecase.Registration
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json")
		return
	}
	customer, err := s.svc.Customers.Register(c, req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, customer)
}

func (s *Server) customerLogin(c *gin.Context) {
	var req credentialsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json")
		return
	}
	session, customer, err := s.svc.Customers.Login(c, req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"session": session, "customer": customer})
}

func (s *Server) customerProfile(c *gin.Context) {
	customer, err := s.svc.Customers.Profile(c, bearerToken(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, customer)
}

func (s *Server) listCustomers(c *gin.Context) {
	customers, err := s.svc.Customers.List(c)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, customers)
}
