// Package products implements the product flows: listing with resolved
// category and label names, the create-only add flow guarded by the
// case-insensitive code uniqueness rule, and the xlsx export.
package products

import (
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/eternity-labs/catalog-admin/app/web"
	"github.com/eternity-labs/catalog-admin/models"
)

// Field bounds for product submissions.
const (
	MaxNameLen        = 40
	MaxCodeLen        = 20
	MaxDescriptionLen = 300
)

type ProductProvider interface {
	GetAll() ([]models.Product, error)
	CodeExists(code string) (bool, error)
	Create(p *models.Product) error
}

type CategoryLister interface {
	All() ([]models.Category, error)
}

type LabelLister interface {
	All() ([]models.Label, error)
}

type Handler struct {
	repo       ProductProvider
	categories CategoryLister
	labels     LabelLister
	log        *zap.Logger
}

func NewHandler(repo ProductProvider, categories CategoryLister, labels LabelLister, log *zap.Logger) *Handler {
	return &Handler{
		repo:       repo,
		categories: categories,
		labels:     labels,
		log:        log,
	}
}

func (h *Handler) Register(r gin.IRouter) {
	r.GET("/products", h.List)
	r.GET("/add_product", h.AddForm)
	r.POST("/add_product", h.Create)
	r.GET("/export_products", h.Export)
}

func (h *Handler) List(c *gin.Context) {
	msg, status := web.TakeFlash(c)
	items, err := h.repo.GetAll()
	if err != nil {
		h.log.Error("list products", zap.Error(err))
		msg, status = "Fail load products", web.StatusDanger
	}
	c.HTML(http.StatusOK, "products.html", gin.H{
		"title":    "Eternity | Product",
		"url":      "/product",
		"products": items,
		"msg":      msg,
		"status":   status,
	})
}

func (h *Handler) AddForm(c *gin.Context) {
	msg, status := web.TakeFlash(c)
	ctx := gin.H{
		"title":  "Eternity | Add Product",
		"url":    "/product",
		"form":   form{},
		"msg":    msg,
		"status": status,
	}
	if err := h.loadOptions(ctx); err != nil {
		h.log.Error("load product form options", zap.Error(err))
		ctx["msg"], ctx["status"] = "Fail load product form", web.StatusDanger
	}
	c.HTML(http.StatusOK, "add_product.html", ctx)
}

// form carries a raw submission so a rejected form re-renders with the
// operator's input intact.
type form struct {
	Name        string
	Code        string
	Description string
	Price       string
	Stock       string
	CategoryID  string
	LabelID     string
}

// Create validates the submission, collecting every violated rule, then
// persists and self-redirects so several products can be added in a row.
func (h *Handler) Create(c *gin.Context) {
	f := form{
		Name:        c.PostForm("product_name"),
		Code:        c.PostForm("product_code"),
		Description: c.PostForm("description"),
		Price:       c.PostForm("price"),
		Stock:       c.PostForm("stock"),
		CategoryID:  c.PostForm("category_id"),
		LabelID:     c.PostForm("label_id"),
	}

	product, errs, err := h.validate(f)
	if err != nil {
		h.fail(c, err, "Fail add new product", "/add_product")
		return
	}
	if len(errs) > 0 {
		ctx := gin.H{
			"title":  "Eternity | Add Product",
			"url":    "/product",
			"errors": errs,
			"form":   f,
		}
		if err := h.loadOptions(ctx); err != nil {
			h.log.Error("load product form options", zap.Error(err))
		}
		c.HTML(http.StatusOK, "add_product.html", ctx)
		return
	}

	if err := h.repo.Create(product); err != nil {
		h.fail(c, err, "Fail add new product", "/add_product")
		return
	}
	web.SetFlash(c, "Success add new product", web.StatusSuccess)
	c.Redirect(http.StatusFound, "/add_product")
}

// validate accumulates every rule violation for the submission. The code
// uniqueness check is case-insensitive; codes are persisted lowercased.
func (h *Handler) validate(f form) (*models.Product, []string, error) {
	var msgs []string

	if f.Name == "" {
		msgs = append(msgs, "The product name is required")
	}
	if utf8.RuneCountInString(f.Name) > MaxNameLen {
		msgs = append(msgs, "The product name is too long")
	}

	if f.Code == "" {
		msgs = append(msgs, "The product code is required")
	}
	if utf8.RuneCountInString(f.Code) > MaxCodeLen {
		msgs = append(msgs, "The product code is too long")
	}
	if f.Code != "" {
		taken, err := h.repo.CodeExists(f.Code)
		if err != nil {
			return nil, nil, err
		}
		if taken {
			msgs = append(msgs, "The product code is already taken")
		}
	}

	if utf8.RuneCountInString(f.Description) > MaxDescriptionLen {
		msgs = append(msgs, "The description is too long")
	}

	var price decimal.Decimal
	if f.Price == "" {
		msgs = append(msgs, "The price is required")
	} else {
		var err error
		price, err = decimal.NewFromString(f.Price)
		if err != nil {
			msgs = append(msgs, "The price must be a number")
		}
	}

	stock := 0
	if f.Stock != "" {
		var err error
		stock, err = strconv.Atoi(f.Stock)
		if err != nil {
			msgs = append(msgs, "The stock must be a number")
		}
	}

	if len(msgs) > 0 {
		return nil, msgs, nil
	}

	// References are weak: a dangling id is stored as submitted.
	categoryID, _ := strconv.ParseUint(f.CategoryID, 10, 32)
	labelID, _ := strconv.ParseUint(f.LabelID, 10, 32)

	return &models.Product{
		Name:        f.Name,
		Code:        strings.ToLower(f.Code),
		Description: f.Description,
		Price:       price,
		Stock:       stock,
		CategoryID:  uint(categoryID),
		LabelID:     uint(labelID),
	}, nil, nil
}

// Export streams the resolved product list as an xlsx workbook.
func (h *Handler) Export(c *gin.Context) {
	items, err := h.repo.GetAll()
	if err != nil {
		h.fail(c, err, "Fail export products", "/products")
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Products"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Name", "Code", "Description", "Price", "Stock", "Category", "Label"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(sheet, cell, header)
	}
	for row, p := range items {
		values := []any{p.Name, p.Code, p.Description, p.Price.String(), p.Stock, p.Category.Name, p.Label.Name}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	c.Header("Content-Disposition", `attachment; filename="products.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		h.log.Error("export products", zap.Error(err))
	}
}

func (h *Handler) loadOptions(ctx gin.H) error {
	categories, err := h.categories.All()
	if err != nil {
		return err
	}
	labels, err := h.labels.All()
	if err != nil {
		return err
	}
	ctx["categories"] = categories
	ctx["labels"] = labels
	return nil
}

func (h *Handler) fail(c *gin.Context, err error, msg, redirect string) {
	h.log.Error(msg, zap.Error(err))
	web.SetFlash(c, msg, web.StatusDanger)
	c.Redirect(http.StatusFound, redirect)
}
