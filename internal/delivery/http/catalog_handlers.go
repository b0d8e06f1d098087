package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
	"github.com/yourusername/hardware-storefront/internal/domain/repository"
)

type bulkReq struct {
	IDs     []string          `json:"ids"`
	Patches []json.RawMessage `json:"patches"`
}

type idsReq struct {
	IDs []string `json:"ids"`
}

func (s *Server) listProducts(c *gin.Context) {
	filter := repository.ProductFilter{
		Query:       c.Query("q"),
		Category:    c.Query("category"),
		ProductType: entity.ProductType(c.Query("type")),
	}
	if raw := c.Query("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			badRequest(c, "invalid featured flag")
			return
		}
		filter.Featured = &featured
	}

	products, err := s.svc.Products.List(c, filter)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, products)
}

func (s *Server) getProduct(c *gin.Context) {
	p, err := s.svc.Products.Get(c, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, p)
}

func (s *Server) createProduct(c *gin.Context) {
	var req entity.Product
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json")
		return
	}
	p, err := s.svc.Products.Create(c, req)
	if err != nil {
		fail(c, err)
		return
	}
	s.audit(c, "create_product", p.ID)
	ok(c, http.StatusCreated, p)
}

func (s *Server) updateProduct(c *gin.Context) {
	var req entity.Product
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json")
		return
	}
	req.ID = c.Param("id")
	p, err := s.svc.Products.Update(c, req)
	if err != nil {
		fail(c, err)
		return
	}
	s.audit(c, "update_product", p.ID)
	ok(c, http.StatusOK, p)
}

func (s *Server) deleteProduct(c *gin.Context) {
	id := c.Param("id")
	if err := s.svc.Products.Delete(c, id); err != nil {
		fail(c, err)
		return
	}
	s.audit(c, "delete_product", id)
	c.Status(http.StatusNoContent)
}

func (s *Server) bulkEditProducts(c *gin.Context) {
	var req bulkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json")
		return
	}
	patches := make([]entity.ProductPatch, 0, len(req.Patches))
	for _, raw := range req.Patches {
		patch, err := entity.DecodeProductPatch(raw)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		patches = append(patches, patch)
	}

	result, err := s.svc.Products.BulkEdit(c, req.IDs, patches)
	if err != nil {
		fail(c, err)
		return
	}
	s.audit(c, "bulk_edit", fmt.Sprintf("%d products, %d patches, %d failed", len(req.IDs), len(patches), result.Failed))
	ok(c, http.StatusOK, result)
}

func (s *Server) bulkDeleteProducts(c *gin.Context) {
	var req idsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json")
		return
	}
	result, err := s.svc.Products.BulkDelete(c, req.IDs)
	if err != nil {
		fail(c, err)
		return
	}
	s.audit(c, "bulk_delete", fmt.Sprintf("%d deleted, %d failed", result.Succeeded, result.Failed))
	ok(c, http.StatusOK, result)
}

func (s *Server) classifyProducts(c *gin.Context) {
	var req idsReq
	// bo'sh body = barcha mahsulotlar
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid json")
			return
		}
	}
	result, err := s.svc.Products.Classify(c, req.IDs)
	if err != nil {
		fail(c, err)
		return
	}
	s.audit(c, "classify", fmt.Sprintf("%d classified, %d failed", result.Succeeded, result.Failed))
	ok(c, http.StatusOK, result)
}

func (s *Server) listHardware(c *gin.Context) {
	var (
		items []entity.HardwareItem
		err   error
	)
	if q := c.Query("q"); q != "" {
		items, err = s.svc.Hardware.Search(c, q)
	} else {
		items, err = s.svc.Hardware.List(c, entity.HardwareCategory(c.Query("category")))
	}
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, items)
}

func (s *Server) hardwareCatalog(c *gin.Context) {
	catalog, err := s.svc.Hardware.Catalog(c)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, catalog)
}

func (s *Server) getHardware(c *gin.Context) {
	item, err := s.svc.Hardware.Get(c, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, item)
}

func (s *Server) createHardware(c *gin.Context) {
	var req entity.HardwareItem
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json")
		return
	}
	item, err := s.svc.Hardware.Create(c, req)
	if err != nil {
		fail(c, err)
		return
	}
	s.audit(c, "create_hardware", item.ID)
	ok(c, http.StatusCreated, item)
}

func (s *Server) updateHardware(c *gin.Context) {
	var req entity.HardwareItem
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json")
		return
	}
	req.ID = c.Param("id")
	item, err := s.svc.Hardware.Update(c, req)
	if err != nil {
		fail(c, err)
		return
	}
	s.audit(c, "update_hardware", item.ID)
	ok(c, http.StatusOK, item)
}

func (s *Server) deleteHardware(c *gin.Context) {
	id := c.Param("id")
	if err := s.svc.Hardware.Delete(c, id); err != nil {
		fail(c, err)
		return
	}
	s.audit(c, "delete_hardware", id)
	c.Status(http.StatusNoContent)
}

func (s *Server) bulkEditHardware(c *gin.Context) {
	var req bulkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json")
		return
	}
	patches := make([]entity.HardwarePatch, 0, len(req.Patches))
	for _, raw := range req.Patches {
		patch, err := entity.DecodeHardwarePatch(raw)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		patches = append(patches, patch)
	}

	result, err := s.svc.Hardware.BulkEdit(c, req.IDs, patches)
	if err != nil {
		fail(c, err)
		return
	}
	s.audit(c, "bulk_edit_hardware", fmt.Sprintf("%d items, %d failed", len(req.IDs), result.Failed))
	ok(c, http.StatusOK, result)
}

func (s *Server) listCategories(c *gin.Context) {
	categories, err := s.svc.Categories.List(c)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, categories)
}

func (s *Server) getCategory(c *gin.Context) {
	category, err := s.svc.Categories.Get(c, c.Param("key"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, category)
}

func (s *Server) createCategory(c *gin.Context) {
	var req entity.Category
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json")
		return
	}
	category, err := s.svc.Categories.Create(c, req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, category)
}

func (s *Server) updateCategory(c *gin.Context) {
	var req entity.Category
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json")
		return
	}
	req.Key = c.Param("key")
	category, err := s.svc.Categories.Update(c, req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, category)
}

func (s *Server) deleteCategory(c *gin.Context) {
	if err := s.svc.Categories.Delete(c, c.Param("key")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listHardwareCategories(c *gin.Context) {
	categories, err := s.svc.HardwareCategories.List(c)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, categories)
}

func (s *Server) getHardwareCategory(c *gin.Context) {
	category, err := s.svc.HardwareCategories.Get(c, c.Param("key"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, category)
}

func (s *Server) createHardwareCategory(c *gin.Context) {
	var req entity.HardwareCategoryInfo
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json")
		return
	}
	category, err := s.svc.HardwareCategories.Create(c, req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, category)
}

func (s *Server) updateHardwareCategory(c *gin.Context) {
	var req entity.HardwareCategoryInfo
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json")
		return
	}
	req.Key = c.Param("key")
	category, err := s.svc.HardwareCategories.Update(c, req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, category)
}

func (s *Server) deleteHardwareCategory(c *gin.Context) {
	if err := s.svc.HardwareCategories.Delete(c, c.Param("key")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
