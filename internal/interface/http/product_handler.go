package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/llOrtegall/backend-app-full-stack/internal/application"
	"github.com/llOrtegall/backend-app-full-stack/internal/domain/entity"
	"github.com/llOrtegall/backend-app-full-stack/pkg/response"
	"github.com/llOrtegall/backend-app-full-stack/pkg/validation"
)

// maxImageSize bounds uploaded product images (5MB, matching the old API).
const maxImageSize = 5 << 20

type ProductHandler struct {
	Svc    *application.ProductService
	Logger *logrus.Logger
}

func NewProductHandler(svc *application.ProductService, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{Svc: svc, Logger: logger}
}

// createProductRequest accepts both JSON and multipart form bodies; the
// multipart path carries an optional image file alongside the fields.
type createProductRequest struct {
	Name        string   `json:"name" form:"name" binding:"required"`
	Description string   `json:"description" form:"description" binding:"required"`
	Sku         string   `json:"sku" form:"sku"`
	Barcode     string   `json:"barcode" form:"barcode"`
	Quantity    int      `json:"quantity" form:"quantity" binding:"gte=0"`
	MinStock    int      `json:"minStock" form:"minStock" binding:"gte=0"`
	MaxStock    *int     `json:"maxStock" form:"maxStock" binding:"omitempty,gte=0"`
	Cost        *float64 `json:"cost" form:"cost" binding:"omitempty,gte=0"`
	Price       float64  `json:"price" form:"price" binding:"gte=0"`
	Category    string   `json:"category" form:"category" binding:"required"`
	Image       string   `json:"image" form:"image_url"`
	Notes       string   `json:"notes" form:"notes"`
}

func productPayload(p *entity.Product) gin.H {
	return gin.H{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"sku":         p.Sku,
		"barcode":     p.Barcode,
		"quantity":    p.Quantity,
		"minStock":    p.MinStock,
		"maxStock":    p.MaxStock,
		"cost":        p.Cost,
		"price":       p.Price,
		"category":    p.Category,
		"image":       p.Image,
		"notes":       p.Notes,
		"created_at":  p.CreatedAt,
		"updated_at":  p.UpdatedAt,
	}
}

// Create registers a new product, optionally uploading an image supplied
// as the multipart "image" file field.
func (h *ProductHandler) Create(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	img, ok := h.imageFromForm(c)
	if !ok {
		return
	}

	p, err := h.Svc.Create(c.Request.Context(), application.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Sku:         req.Sku,
		Barcode:     req.Barcode,
		Quantity:    req.Quantity,
		MinStock:    req.MinStock,
		MaxStock:    req.MaxStock,
		Cost:        req.Cost,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
		Notes:       req.Notes,
	}, img)
	if err != nil {
		switch entity.KindOf(err) {
		case entity.KindProductAlreadyExists:
			response.Error[any](c, http.StatusConflict, err.Error(), nil)
		case entity.KindInvalidProductData, entity.KindInvalidPrice, entity.KindInvalidStock:
			response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
		default:
			if h.Logger != nil {
				h.Logger.WithError(err).Error("create product failed")
			}
			response.Error[any](c, http.StatusInternalServerError, "failed to create product", nil)
		}
		return
	}

	response.Success(c, http.StatusCreated, productPayload(p), "product created", nil)
}

// imageFromForm extracts the optional multipart image. It writes the
// error response itself and returns ok=false when the file is rejected.
func (h *ProductHandler) imageFromForm(c *gin.Context) (*application.ImageUpload, bool) {
	fh, err := c.FormFile("image")
	if err != nil {
		// no file supplied, or not a multipart request at all
		return nil, true
	}
	if fh.Size > maxImageSize {
		response.Error[any](c, http.StatusBadRequest, "image exceeds the 5MB limit", nil)
		return nil, false
	}
	contentType := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		response.Error[any](c, http.StatusBadRequest, "only images are allowed", nil)
		return nil, false
	}
	f, err := fh.Open()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "cannot read uploaded image", nil)
		return nil, false
	}
	return &application.ImageUpload{Reader: f, Filename: fh.Filename, ContentType: contentType}, true
}

// List returns every product, served from cache when warm.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.Svc.List(c.Request.Context())
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("list products failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to list products", nil)
		return
	}
	out := make([]gin.H, 0, len(products))
	for _, p := range products {
		out = append(out, productPayload(p))
	}
	response.Success(c, http.StatusOK, out, "products", map[string]any{"count": len(out)})
}

// GetByID returns a single product.
func (h *ProductHandler) GetByID(c *gin.Context) {
	p, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if entity.IsKind(err, entity.KindProductNotFound) {
			response.Error[any](c, http.StatusNotFound, err.Error(), nil)
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).Error("get product failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to get product", nil)
		return
	}
	response.Success(c, http.StatusOK, productPayload(p), "product", nil)
}

// Search queries the product search index.
func (h *ProductHandler) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "missing query parameter q", nil)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("search products failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "search failed", nil)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", map[string]any{"count": len(hits)})
}
