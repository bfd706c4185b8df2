package menu

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterTextRoutes mounts the plain text menu at the root of the router.
// Paths the tree cannot match, such as "/{location}/" or deeper paths, fall
// through to NoRoute so ParsePath sees them unchanged.
func RegisterTextRoutes(router *gin.Engine, h *Handler) {
	router.RedirectTrailingSlash = false

	router.GET("/favicon.ico", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	router.GET("/", h.GetMenuText)
	router.GET("/:first", h.GetMenuText)
	router.GET("/:first/:second", h.GetMenuText)
	router.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.Status(http.StatusNotFound)
			return
		}
		h.GetMenuText(c)
	})
}

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	menu := rg.Group("/menu")
	{
		menu.GET("", h.GetMenu)
	}
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
