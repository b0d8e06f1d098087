package httpapi

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"
	"github.com/google/uuid"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
	"github.com/yourusername/hardware-storefront/internal/domain/repository"
	"github.com/yourusername/hardware-storefront/internal/usecase"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type chatReq struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
}

// chat AI maslahatchi bilan suhbat; sessionId bo'lmasa yangisi beriladi
func (s *Server) chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json")
		return
	}
	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}
	reply, err := s.svc.Chat.ProcessMessage(c, req.SessionID, subject(c), req.Message)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"reply": reply, "sessionId": req.SessionID})
}

// suggestions provayder sozlanmagan bo'lsa 501
func (s *Server) suggestions(c *gin.Context) (repository.SuggestionService, bool) {
	if s.svc.Suggestions == nil {
		fail(c, fmt.Errorf("suggestion provider: %w", repository.ErrUnsupported))
		return nil, false
	}
	return s.svc.Suggestions, true
}

func (s *Server) generateText(c *gin.Context) {
	svc, found := s.suggestions(c)
	if !found {
		return
	}
	var req entity.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Prompt) == "" && req.Title == "" {
		badRequest(c, "prompt or title is required")
		return
	}
	resp, err := svc.Generate(c, req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, resp)
}

func (s *Server) searchImages(c *gin.Context) {
	svc, found := s.suggestions(c)
	if !found {
		return
	}
	var req entity.ImageSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Query) == "" {
		badRequest(c, "query is required")
		return
	}
	resp, err := svc.SearchImages(c, req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, resp)
}

func (s *Server) textToSpeech(c *gin.Context) {
	svc, found := s.suggestions(c)
	if !found {
		return
	}
	var req entity.SpeechRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		badRequest(c, "text is required")
		return
	}
	resp, err := svc.TextToSpeech(c, req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, resp)
}

func (s *Server) generateMusic(c *gin.Context) {
	svc, found := s.suggestions(c)
	if !found {
		return
	}
	var req entity.MusicRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Prompt) == "" {
		badRequest(c, "prompt is required")
		return
	}
	resp, err := svc.GenerateMusic(c, req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, resp)
}

// importCatalog Excel faylni yuklash (multipart "file")
func (s *Server) importCatalog(c *gin.Context) {
	kind, err := usecase.ParseCatalogKind(c.Param("kind"))
	if err != nil {
		fail(c, err)
		return
	}
	header, err := c.FormFile("file")
	if err != nil {
		badRequest(c, "file is required")
		return
	}
	f, err := header.Open()
	if err != nil {
		fail(c, err)
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		fail(c, err)
		return
	}
	replace, _ := strconv.ParseBool(c.Query("replace"))

	result, err := s.svc.Admins.UploadCatalog(c, subject(c), kind, data, header.Filename, replace)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, result)
}

// orderRow buyurtmalar CSV eksporti uchun qator
type orderRow struct {
	Number    int64   `csv:"number"`
	ID        string  `csv:"id"`
	Customer  string  `csv:"customer"`
	Phone     string  `csv:"phone"`
	Items     int     `csv:"items"`
	Total     float64 `csv:"total"`
	Status    string  `csv:"status"`
	CreatedAt string  `csv:"created_at"`
}

// exportCatalog hardware/products -> xlsx, orders -> csv
func (s *Server) exportCatalog(c *gin.Context) {
	kindName := c.Param("kind")
	if kindName == "orders" {
		s.exportOrders(c)
		return
	}
	kind, err := usecase.ParseCatalogKind(kindName)
	if err != nil {
		fail(c, err)
		return
	}
	data, err := s.svc.Admins.ExportCatalog(c, kind)
	if err != nil {
		fail(c, err)
		return
	}
	filename := fmt.Sprintf("%s-%s.xlsx", kind, time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

func (s *Server) exportOrders(c *gin.Context) {
	orders, err := s.svc.Orders.List(c, entity.OrderStatus(c.Query("status")))
	if err != nil {
		fail(c, err)
		return
	}
	rows := make([]*orderRow, 0, len(orders))
	for _, o := range orders {
		items := 0
		for _, it := range o.Items {
			items += it.Quantity
		}
		rows = append(rows, &orderRow{
			Number:    o.Number,
			ID:        o.ID,
			Customer:  o.CustomerName,
			Phone:     o.CustomerPhone,
			Items:     items,
			Total:     o.Total,
			Status:    string(o.Status),
			CreatedAt: o.CreatedAt.Format(time.RFC3339),
		})
	}
	data, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		fail(c, err)
		return
	}
	filename := fmt.Sprintf("orders-%s.csv", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// uploadMedia bir nechta faylni yuklash (multipart "files")
func (s *Server) uploadMedia(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		badRequest(c, "multipart form is required")
		return
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		badRequest(c, "files are required")
		return
	}

	files := make([]usecase.UploadFile, 0, len(headers))
	for _, h := range headers {
		f, err := h.Open()
		if err != nil {
			fail(c, err)
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			fail(c, err)
			return
		}
		files = append(files, usecase.UploadFile{Name: h.Filename, Data: data})
	}

	result, err := s.svc.Media.Upload(c, files)
	if err != nil {
		fail(c, err)
		return
	}
	s.audit(c, "upload_media", fmt.Sprintf("%d files", result.Succeeded))
	ok(c, http.StatusOK, result)
}
