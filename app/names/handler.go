package names

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eternity-labs/catalog-admin/app/web"
)

// Store is the persistence surface shared by the name-only entity kinds.
// Exists must match on the exact stored name; Rename and Delete address
// records by their current name and report a missing record as an error.
type Store interface {
	ListNames() ([]string, error)
	Exists(name string) (bool, error)
	Insert(name string) error
	Rename(oldName, newName string) error
	Delete(name string) error
}

// Resource describes how one entity kind is exposed over HTTP.
type Resource struct {
	Kind       string // message noun and form field, e.g. "category"
	Plural     string
	Title      string // page title fragment, e.g. "Category"
	Section    string // active-sidebar marker
	ListPath   string
	AddPath    string
	EditPath   string // joined with /:name
	DeletePath string // joined with /:name
	ListTmpl   string
	AddTmpl    string
	EditTmpl   string
}

var CategoryResource = Resource{
	Kind:       "category",
	Plural:     "categories",
	Title:      "Category",
	Section:    "/category",
	ListPath:   "/categories",
	AddPath:    "/add_category",
	EditPath:   "/edit_category",
	DeletePath: "/delete_category",
	ListTmpl:   "categories.html",
	AddTmpl:    "add_category.html",
	EditTmpl:   "edit_category.html",
}

var LabelResource = Resource{
	Kind:       "label",
	Plural:     "labels",
	Title:      "Label",
	Section:    "/label",
	ListPath:   "/labels",
	AddPath:    "/add_label",
	EditPath:   "/edit_label",
	DeletePath: "/delete_label",
	ListTmpl:   "labels.html",
	AddTmpl:    "add_label.html",
	EditTmpl:   "edit_label.html",
}

// Handler sequences validate, persist, flash and redirect for one kind.
type Handler struct {
	res   Resource
	store Store
	val   *Validator
	log   *zap.Logger
}

func NewHandler(res Resource, store Store, log *zap.Logger) *Handler {
	return &Handler{
		res:   res,
		store: store,
		val:   &Validator{Field: res.Kind, MaxLen: MaxNameLen, Exists: store.Exists},
		log:   log,
	}
}

func (h *Handler) Register(r gin.IRouter) {
	r.GET(h.res.ListPath, h.List)
	r.GET(h.res.AddPath, h.AddForm)
	r.POST(h.res.AddPath, h.Create)
	r.GET(h.res.EditPath+"/:name", h.EditForm)
	r.PUT(h.res.EditPath+"/:name", h.Update)
	r.DELETE(h.res.DeletePath+"/:name", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	msg, status := web.TakeFlash(c)
	items, err := h.store.ListNames()
	if err != nil {
		h.log.Error("list "+h.res.Plural, zap.Error(err))
		msg, status = "Fail load "+h.res.Plural, web.StatusDanger
	}
	c.HTML(http.StatusOK, h.res.ListTmpl, gin.H{
		"title":  "Eternity | " + h.res.Title,
		"url":    h.res.Section,
		"names":  items,
		"msg":    msg,
		"status": status,
	})
}

func (h *Handler) AddForm(c *gin.Context) {
	msg, status := web.TakeFlash(c)
	c.HTML(http.StatusOK, h.res.AddTmpl, gin.H{
		"title":  "Eternity | Add " + h.res.Title,
		"url":    h.res.Section,
		"value":  "",
		"msg":    msg,
		"status": status,
	})
}

// Create handles the add POST. On success the flow redirects back to the
// add form so the operator can submit several records in a row.
func (h *Handler) Create(c *gin.Context) {
	raw := c.PostForm(h.res.Kind)
	normalized, errs, err := h.val.Check(raw)
	if err != nil {
		h.fail(c, err, "Fail add new "+h.res.Kind, h.res.AddPath)
		return
	}
	if len(errs) > 0 {
		c.HTML(http.StatusOK, h.res.AddTmpl, gin.H{
			"title":  "Eternity | Add " + h.res.Title,
			"url":    h.res.Section,
			"errors": errs,
			"value":  raw,
		})
		return
	}
	if err := h.store.Insert(normalized); err != nil {
		h.fail(c, err, "Fail add new "+h.res.Kind, h.res.AddPath)
		return
	}
	web.SetFlash(c, "Success add new "+h.res.Kind, web.StatusSuccess)
	c.Redirect(http.StatusFound, h.res.AddPath)
}

func (h *Handler) EditForm(c *gin.Context) {
	msg, status := web.TakeFlash(c)
	c.HTML(http.StatusOK, h.res.EditTmpl, gin.H{
		"title":  "Eternity | Edit " + h.res.Title,
		"url":    h.res.Section,
		"name":   c.Param("name"),
		"msg":    msg,
		"status": status,
	})
}

// Update handles the edit PUT. The path segment carries the current name;
// renaming a record to its own name is not a collision.
func (h *Handler) Update(c *gin.Context) {
	current := c.Param("name")
	raw := c.PostForm(h.res.Kind)
	normalized, errs, err := h.val.CheckRename(raw, current)
	if err != nil {
		h.fail(c, err, "Fail edit "+h.res.Kind, h.res.ListPath)
		return
	}
	if len(errs) > 0 {
		c.HTML(http.StatusOK, h.res.EditTmpl, gin.H{
			"title":  "Eternity | Edit " + h.res.Title,
			"url":    h.res.Section,
			"name":   current,
			"errors": errs,
		})
		return
	}
	if err := h.store.Rename(current, normalized); err != nil {
		h.fail(c, err, "Fail edit "+h.res.Kind, h.res.ListPath)
		return
	}
	web.SetFlash(c, "Success edit "+h.res.Kind, web.StatusUpdated)
	c.Redirect(http.StatusFound, h.res.ListPath)
}

// Delete removes the record named in the path. Deleting a name that is
// not stored is reported as a failure.
func (h *Handler) Delete(c *gin.Context) {
	name := c.Param("name")
	if err := h.store.Delete(name); err != nil {
		h.log.Error("delete "+h.res.Kind, zap.String("name", name), zap.Error(err))
		web.SetFlash(c, "Fail delete a "+h.res.Kind, web.StatusDanger)
		c.Redirect(http.StatusFound, h.res.ListPath)
		return
	}
	web.SetFlash(c, "Success delete a "+h.res.Kind, web.StatusDeleted)
	c.Redirect(http.StatusFound, h.res.ListPath)
}

func (h *Handler) fail(c *gin.Context, err error, msg, redirect string) {
	h.log.Error(msg, zap.Error(err))
	web.SetFlash(c, msg, web.StatusDanger)
	c.Redirect(http.StatusFound, redirect)
}
