package handlers

import (
	"encoding/json"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// bindOptional decodes the JSON body into req when it can. Only
// application/json bodies are read. A missing, non-JSON or malformed body
// leaves every field absent instead of failing the request.
func bindOptional(c *gin.Context, req any) {
	if c.ContentType() != binding.MIMEJSON {
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		log.Printf("Failed to read request body for %s: %v", c.FullPath(), err)
		return
	}
	if len(body) == 0 {
		return
	}
	if err := json.Unmarshal(body, req); err != nil {
		log.Printf("Ignoring unreadable body for %s: %v", c.FullPath(), err)
	}
}
