package resources

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"ImpactFlow/pkg/validation"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
)

// Handler exposes a Service over HTTP. When filterParam is set, a non-empty
// query parameter of that name narrows List to records whose field of the
// same name matches exactly.
type Handler[T any] struct {
	service     *Service[T]
	filterParam string
}

func NewHandler[T any](service *Service[T], filterParam string) *Handler[T] {
	return &Handler[T]{service: service, filterParam: filterParam}
}

// Create ignores any id the client sends; the store assigns it.
func (h *Handler[T]) Create(c echo.Context) error {
	if err := dropClientID(c.Request()); err != nil {
		return validation.Errorf("invalid request body")
	}
	var rec T
	if err := c.Bind(&rec); err != nil {
		return validation.Errorf("invalid request body")
	}

	id, err := h.service.Create(c.Request().Context(), &rec)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"id": id})
}

func (h *Handler[T]) List(c echo.Context) error {
	var filter bson.M
	if h.filterParam != "" {
		if v := c.QueryParam(h.filterParam); v != "" {
			filter = bson.M{h.filterParam: v}
		}
	}

	recs, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recs)
}

// dropClientID removes top-level "id" (in any case) and "_id" members from a
// JSON body.
func dropClientID(req *http.Request) error {
	if req.Body == nil || req.ContentLength == 0 ||
		!strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		return nil
	}
	raw, err := io.ReadAll(req.Body)
	if err != nil {
		return err
	}
	req.Body.Close()

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return err
	}
	for k := range fields {
		if k == "_id" || strings.EqualFold(k, "id") {
			delete(fields, k)
		}
	}
	if raw, err = json.Marshal(fields); err != nil {
		return err
	}
	req.Body = io.NopCloser(bytes.NewReader(raw))
	req.ContentLength = int64(len(raw))
	return nil
}
