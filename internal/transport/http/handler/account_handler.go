package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-account-service/internal/core/auth"
	"go-account-service/internal/core/cache"
	"go-account-service/internal/domain"
	"go-account-service/internal/service"
	mdw "go-account-service/internal/transport/http/middleware"
	resp "go-account-service/internal/transport/http/response"
)

// Accounts is the slice of the account service the handler needs.
type Accounts interface {
	Create(ctx context.Context, in service.NewAccount) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindAll(ctx context.Context) ([]domain.Account, error)
	Search(ctx context.Context, opts domain.ListOptions) ([]domain.Account, int64, error)
	Update(ctx context.Context, id string, p domain.Patch) (*domain.Account, error)
	Delete(ctx context.Context, id string) error
}

type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*domain.Account, error)
}

type AccountHandler struct {
	svc   Accounts
	gate  Authenticator
	jwter *auth.JWTer

	// read-through cache for by-id lookups; nil disables caching
	cache    *cache.Cache
	cacheTTL time.Duration
}

func NewAccountHandler(svc Accounts, gate Authenticator, jwter *auth.JWTer) *AccountHandler {
	return &AccountHandler{svc: svc, gate: gate, jwter: jwter}
}

func (h *AccountHandler) WithCache(c *cache.Cache, ttl time.Duration) *AccountHandler {
	h.cache = c
	h.cacheTTL = ttl
	return h
}

// MountAPI hangs the public surface on /api/v1.
func (h *AccountHandler) MountAPI(g *gin.RouterGroup) {
	g.POST("/accounts", h.Create)
	g.GET("/accounts", h.List)
	g.GET("/accounts/:id", h.GetByID)
	g.PUT("/accounts/:id", h.Update)
	g.DELETE("/accounts/:id", h.Delete)
	g.POST("/login", h.Login)
}

// MountAuthed hangs the routes that need a verified bearer token.
func (h *AccountHandler) MountAuthed(g *gin.RouterGroup) {
	g.GET("/me", h.Me)
}

// MountAdmin hangs the paged listing on the admin engine.
func (h *AccountHandler) MountAdmin(g *gin.RouterGroup) {
	g.GET("/accounts", h.AdminList)
}

type createReq struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

func (h *AccountHandler) Create(c *gin.Context) {
	var in createReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, err.Error()))
		return
	}
	a, err := h.svc.Create(c.Request.Context(), service.NewAccount{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  in.Password,
	})
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(a))
}

func (h *AccountHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	if h.cache != nil {
		// A miss is cached as null so repeated lookups of an absent id do
		// not hit the store; ids are store-assigned, so a missing one never
		// comes into existence later.
		a, err := cache.GetOrLoadJSON[domain.Account](h.cache, ctx, accountKey(id), h.cacheTTL,
			func(ctx context.Context) (*domain.Account, error) {
				a, err := h.svc.FindByID(ctx, id)
				if domain.IsNotFound(err) {
					return nil, nil
				}
				return a, err
			})
		if err != nil {
			writeErr(c, err)
			return
		}
		if a == nil {
			writeErr(c, domain.NotFound(id))
			return
		}
		c.JSON(http.StatusOK, resp.OK(a))
		return
	}

	a, err := h.svc.FindByID(ctx, id)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(a))
}

func (h *AccountHandler) List(c *gin.Context) {
	items, err := h.svc.FindAll(c.Request.Context())
	if err != nil {
		writeErr(c, err)
		return
	}
	if items == nil {
		items = []domain.Account{}
	}
	c.JSON(http.StatusOK, resp.OK(items))
}

func (h *AccountHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var p domain.Patch
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, err.Error()))
		return
	}
	a, err := h.svc.Update(c.Request.Context(), id, p)
	if err != nil {
		writeErr(c, err)
		return
	}
	h.invalidate(c.Request.Context(), id)
	c.JSON(http.StatusOK, resp.OK(a))
}

// Delete never reports a failure for a missing id.
func (h *AccountHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeErr(c, err)
		return
	}
	h.invalidate(c.Request.Context(), id)
	c.JSON(http.StatusOK, resp.OK(gin.H{"id": id}))
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges a credential pair for a bearer token. The token is issued
// only after the gate accepted the pair.
func (h *AccountHandler) Login(c *gin.Context) {
	var in loginReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, err.Error()))
		return
	}
	a, err := h.gate.Authenticate(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		writeErr(c, err)
		return
	}
	tok, err := h.jwter.Issue(a.Email)
	if err != nil || tok == "" {
		c.JSON(http.StatusOK, resp.Error(resp.CodeServerError, "issue token failed"))
		return
	}
	c.JSON(http.StatusOK, resp.OK(gin.H{"token": tok}))
}

// Me resolves the token subject against the store. A stale token whose
// account was deleted lands in not found here, which is the one place
// staleness becomes visible.
func (h *AccountHandler) Me(c *gin.Context) {
	email := c.GetString(mdw.KeyEmail)
	if email == "" {
		c.JSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, "unauthorized"))
		return
	}
	a, err := h.svc.FindByEmail(c.Request.Context(), email)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(a))
}

type adminListQ struct {
	Offset int    `form:"offset,default=0"`
	Limit  int    `form:"limit,default=20"`
	Q      string `form:"q"`
}

type adminListOut struct {
	Total int64            `json:"total"`
	Items []domain.Account `json:"items"`
}

func (h *AccountHandler) AdminList(c *gin.Context) {
	var in adminListQ
	if err := c.ShouldBindQuery(&in); err != nil {
		c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, err.Error()))
		return
	}
	if in.Limit <= 0 || in.Limit > 100 {
		in.Limit = 20
	}
	items, total, err := h.svc.Search(c.Request.Context(), domain.ListOptions{
		Offset: in.Offset,
		Limit:  in.Limit,
		Q:      in.Q,
	})
	if err != nil {
		writeErr(c, err)
		return
	}
	if items == nil {
		items = []domain.Account{}
	}
	c.JSON(http.StatusOK, resp.OK(adminListOut{Total: total, Items: items}))
}

func (h *AccountHandler) invalidate(ctx context.Context, id string) {
	if h.cache != nil {
		h.cache.Invalidate(ctx, accountKey(id))
	}
}

func accountKey(id string) string { return "account:id:" + id }

// writeErr maps the typed service outcomes onto envelope codes in one place.
func writeErr(c *gin.Context, err error) {
	var fe *domain.FieldError
	switch {
	case errors.As(err, &fe), errors.Is(err, domain.ErrDuplicateEmail):
		c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, err.Error()))
	case domain.IsNotFound(err):
		c.JSON(http.StatusOK, resp.Error(resp.CodeNotFound, err.Error()))
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, err.Error()))
	default:
		c.JSON(http.StatusOK, resp.Error(resp.CodeServerError, err.Error()))
	}
}
