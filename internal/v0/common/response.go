package common

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextKeyRequestID is where the request id middleware stores the id.
const ContextKeyRequestID = "request_id"

// Structs for the API response format

type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	RequestID string    `json:"requestId"`
}

type APIResponse struct {
	Data     interface{} `json:"data"`
	Errors   []string    `json:"errors"`
	Metadata Metadata    `json:"metadata"`
}

// RequestID returns the id assigned to the request, or "" if none was.
func RequestID(c *gin.Context) string {
	return c.GetString(ContextKeyRequestID)
}

// Response functions

func CreateAPIResponse(data interface{}, errors []string, requestID string) APIResponse {
	// Requests that did not pass through the middleware still get an id
	if requestID == "" {
		requestID = uuid.New().String()
	}
	if errors == nil {
		errors = []string{}
	}
	return APIResponse{
		Data:   data,
		Errors: errors,
		Metadata: Metadata{
			Timestamp: time.Now().UTC(),
			Version:   "v0",
			RequestID: requestID,
		},
	}
}

// Success writes data in the envelope with the given status.
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, CreateAPIResponse(data, nil, RequestID(c)))
}

// Failure writes errors in the envelope and aborts the chain.
func Failure(c *gin.Context, status int, errors ...string) {
	c.AbortWithStatusJSON(status, CreateAPIResponse(nil, errors, RequestID(c)))
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
