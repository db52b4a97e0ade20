package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/raksshana/SlugSync/internal/category"
	"github.com/raksshana/SlugSync/internal/domain"
	"github.com/raksshana/SlugSync/internal/feed"
	"github.com/raksshana/SlugSync/internal/handler/dto"
	"github.com/raksshana/SlugSync/internal/middleware"
	"github.com/raksshana/SlugSync/internal/timemodel"
	"github.com/wb-go/wbf/ginext"
)

const rangeLayout = "2006-01-02"

type EventSvc interface {
	Create(ctx context.Context, ownerID uuid.UUID, input domain.EventInput) (*domain.Event, error)
	Update(ctx context.Context, callerID uuid.UUID, id int64, input domain.EventInput) (*domain.Event, error)
	Delete(ctx context.Context, callerID uuid.UUID, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
}

type FavoriteSvc interface {
	Add(ctx context.Context, userID uuid.UUID, eventID int64) error
	Remove(ctx context.Context, userID uuid.UUID, eventID int64) error
	ListIDs(ctx context.Context, userID uuid.UUID) (domain.FavoriteSet, error)
}

type AuthSvc interface {
	Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error)
	PasswordToken(ctx context.Context, email, password string) (*domain.Token, error)
	GoogleToken(ctx context.Context, idToken string) (*domain.Token, error)
}

type Handler struct {
	eventService    EventSvc
	favoriteService FavoriteSvc
	authService     AuthSvc
}

func NewHandler(eventService EventSvc, favoriteService FavoriteSvc, authService AuthSvc) *Handler {
	return &Handler{
		eventService:    eventService,
		favoriteService: favoriteService,
		authService:     authService,
	}
}

// Events

// ListEvents runs the feed pipeline server-side: the same
// resolve/filter/sort the client applies to its snapshot. Query
// params: q, category, from, to (YYYY-MM-DD), tz (IANA name),
// include_past.
func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	favorites := domain.FavoriteSet{}
	if userID, ok := middleware.UserID(c); ok {
		favorites, err = h.favoriteService.ListIDs(c.Request.Context(), userID)
		if err != nil {
			h.handleError(c, err)
			return
		}
	}

	loc := viewerLocation(c)
	q := feed.Query{
		Category:    c.DefaultQuery("category", category.All),
		Text:        c.Query("q"),
		IncludePast: c.Query("include_past") == "true",
		Now:         time.Now(),
		Loc:         loc,
	}
	if from, err := time.ParseInLocation(rangeLayout, c.Query("from"), loc); err == nil {
		if to, err := time.ParseInLocation(rangeLayout, c.Query("to"), loc); err == nil {
			q.From, q.To, q.Ranged = from, to, true
		}
	}

	byID := make(map[int64]*domain.Event, len(events))
	records := make([]feed.Record, 0, len(events))
	for _, e := range events {
		byID[e.ID] = e
		records = append(records, dto.ToRecord(e))
	}

	items := feed.Apply(feed.Resolve(records, favorites), q)

	resp := make([]dto.EventResponse, 0, len(items))
	for _, it := range items {
		e := byID[it.ID]
		resp = append(resp, dto.ToEventResponse(it, e.OwnerID.String(), e.CreatedAt, loc))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	event, err := h.eventService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	favorites := domain.FavoriteSet{}
	if userID, ok := middleware.UserID(c); ok {
		favorites, err = h.favoriteService.ListIDs(c.Request.Context(), userID)
		if err != nil {
			h.handleError(c, err)
			return
		}
	}

	loc := viewerLocation(c)
	items := feed.Resolve([]feed.Record{dto.ToRecord(event)}, favorites)

	c.JSON(http.StatusOK, dto.ToEventResponse(items[0], event.OwnerID.String(), event.CreatedAt, loc))
}

func (h *Handler) CreateEvent(c *ginext.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	input, ok := bindEventInput(c)
	if !ok {
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), userID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respondSingle(c, http.StatusCreated, event)
}

// UpdateEvent handles POST /events/:id, the update form of the wire
// contract.
func (h *Handler) UpdateEvent(c *ginext.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	id, ok := eventID(c)
	if !ok {
		return
	}

	input, ok := bindEventInput(c)
	if !ok {
		return
	}

	event, err := h.eventService.Update(c.Request.Context(), userID, id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respondSingle(c, http.StatusOK, event)
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	id, ok := eventID(c)
	if !ok {
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), userID, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Favorites

func (h *Handler) AddFavorite(c *ginext.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.favoriteService.Add(c.Request.Context(), userID, req.EventID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ginext.H{"event_id": req.EventID})
}

func (h *Handler) RemoveFavorite(c *ginext.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	id, ok := eventID(c)
	if !ok {
		return
	}

	if err := h.favoriteService.Remove(c.Request.Context(), userID, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Auth

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.authService.Register(c.Request.Context(), domain.RegisterInput{
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Password:    req.Password,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// PasswordToken implements POST /token (OAuth2 password grant,
// form-encoded).
func (h *Handler) PasswordToken(c *ginext.Context) {
	var req dto.TokenRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ginext.H{"error": "invalid_request"})
		return
	}
	if req.GrantType != "password" {
		c.JSON(http.StatusBadRequest, ginext.H{"error": "unsupported_grant_type"})
		return
	}

	token, err := h.authService.PasswordToken(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, token)
}

func (h *Handler) GoogleToken(c *ginext.Context) {
	var req dto.GoogleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	token, err := h.authService.GoogleToken(c.Request.Context(), req.IDToken)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, token)
}

// helpers

func (h *Handler) respondSingle(c *ginext.Context, status int, event *domain.Event) {
	loc := viewerLocation(c)
	items := feed.Resolve([]feed.Record{dto.ToRecord(event)}, nil)
	c.JSON(status, dto.ToEventResponse(items[0], event.OwnerID.String(), event.CreatedAt, loc))
}

// bindEventInput parses the shared create/update body. Creation is
// strict about timestamps: the tolerant display fallback is for
// reading feeds, not for writing malformed data.
func bindEventInput(c *ginext.Context) (domain.EventInput, bool) {
	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return domain.EventInput{}, false
	}

	times := timemodel.Resolve(req.StartsAt, req.EndsAt)
	if times.Unparsed {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid starts_at, expected ISO-8601",
		})
		return domain.EventInput{}, false
	}
	if req.EndsAt != "" && !times.HasEnd {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid ends_at, expected ISO-8601",
		})
		return domain.EventInput{}, false
	}

	input := domain.EventInput{
		Name:        req.Name,
		Location:    req.Location,
		StartsAt:    times.Start,
		Host:        req.Host,
		Description: req.Description,
		Tags:        req.Tags,
	}
	if times.HasEnd {
		end := times.End
		input.EndsAt = &end
	}

	return input, true
}

func eventID(c *ginext.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return 0, false
	}
	return id, true
}

func mustUserID(c *ginext.Context) (uuid.UUID, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return uuid.UUID{}, false
	}
	return userID, true
}

func viewerLocation(c *ginext.Context) *time.Location {
	if tz := c.Query("tz"); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.UTC
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrFavoriteNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAlreadyFavorite):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrBadCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
