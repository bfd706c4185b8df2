package menu

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mensa/internal/style"
	"mensa/internal/v0/common"
)

const ContentTypeText = "text/plain; charset=UTF-8"

// Handler serves rendered menus.
type Handler struct {
	renderer *Renderer
	color    bool
	logger   *zap.Logger
}

// NewHandler creates a handler. color sets whether text responses carry ANSI
// styles unless a request overrides it with ?color=.
func NewHandler(renderer *Renderer, color bool, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{renderer: renderer, color: color, logger: logger}
}

// GetMenuText answers "/", "/{day}" and "/{location}/{day}" with the styled menu.
func (h *Handler) GetMenuText(c *gin.Context) {
	result, err := h.renderer.Render(c.Request.Context(), ParsePath(c.Request.URL.Path))
	if err != nil {
		h.logFailure(c, err)
		c.Data(http.StatusInternalServerError, ContentTypeText, []byte("Error accessing TUM-Eat API: "+feedReason(err)+"\n"))
		return
	}

	renderer := style.For(h.useColor(c))
	c.Data(http.StatusOK, ContentTypeText, []byte(style.Render(renderer, result.Segments)))
}

// GetMenu answers /api/v0/menu?location=&day= with the structured menu.
func (h *Handler) GetMenu(c *gin.Context) {
	req := Request{Location: c.Query("location"), Day: c.Query("day")}
	result, err := h.renderer.Render(c.Request.Context(), req)
	if err != nil {
		h.logFailure(c, err)
		common.Failure(c, http.StatusInternalServerError, "Error accessing TUM-Eat API: "+feedReason(err))
		return
	}
	common.Success(c, http.StatusOK, result.Menu)
}

func (h *Handler) useColor(c *gin.Context) bool {
	if v, ok := c.GetQuery("color"); ok {
		if enabled, err := strconv.ParseBool(v); err == nil {
			return enabled
		}
	}
	return h.color
}

func (h *Handler) logFailure(c *gin.Context, err error) {
	_ = c.Error(err)
	h.logger.Warn("menu unavailable", zap.Error(err), zap.String("request_id", common.RequestID(c)))
}

func feedReason(err error) string {
	var feedErr *FeedError
	if errors.As(err, &feedErr) {
		return feedErr.Reason()
	}
	return err.Error()
}

//   This project serves the daily menu of the TUM canteens as fixed-width text for terminals and scripts.
//   Mensa API Copyright (C) 2025 OpenSourceDUTH
//       This program is free software: you can redistribute it and/or modify
//       it under the terms of the GNU General Public License as published by
//       the Free Software Foundation, either version 3 of the License, or
//       (at your option) any later version.

//       This program is distributed in the hope that it will be useful,
//       but WITHOUT ANY WARRANTY; without even the implied warranty of
//       MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//       GNU General Public License for more details.

//       You should have received a copy of the GNU General Public License
//       along with this program.  If not, see <https://www.gnu.org/licenses/>.
