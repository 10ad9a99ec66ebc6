// Package server builds the gin engine: sessions, middleware, templates
// and the full route table.
package server

import (
	"html/template"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eternity-labs/catalog-admin/app/dashboard"
	"github.com/eternity-labs/catalog-admin/app/names"
	"github.com/eternity-labs/catalog-admin/app/products"
	"github.com/eternity-labs/catalog-admin/app/web"
)

type Options struct {
	TemplateGlob  string
	SessionSecret string
	Logger        *zap.Logger

	Categories names.Store
	Labels     names.Store

	Products     products.ProductProvider
	CategoryRefs products.CategoryLister
	LabelRefs    products.LabelLister
}

// New wires middleware, templates and routes. Wrap the returned engine
// with web.MethodOverride before serving so HTML forms can tunnel PUT and
// DELETE over POST.
func New(opts Options) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies(nil)

	r.Use(web.RequestLogger(opts.Logger), web.Recovery(opts.Logger))
	r.Use(sessions.Sessions("eternity_session", cookie.NewStore([]byte(opts.SessionSecret))))

	r.SetFuncMap(template.FuncMap{"alertClass": web.AlertClass})
	r.LoadHTMLGlob(opts.TemplateGlob)

	r.GET("/", dashboard.Index)
	names.NewHandler(names.CategoryResource, opts.Categories, opts.Logger).Register(r)
	names.NewHandler(names.LabelResource, opts.Labels, opts.Logger).Register(r)
	products.NewHandler(opts.Products, opts.CategoryRefs, opts.LabelRefs, opts.Logger).Register(r)
	r.NoRoute(dashboard.NotFound)

	return r
}
