package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const notFoundText = "404 Not Found"

type notFoundBody struct {
	contentType string
	body        []byte
}

// notFoundRenderer builds the 404 body for one negotiated format.
type notFoundRenderer func(htmlPage []byte) notFoundBody

var notFoundRenderers = map[string]notFoundRenderer{
	gin.MIMEHTML: func(htmlPage []byte) notFoundBody {
		return notFoundBody{contentType: "text/html; charset=utf-8", body: htmlPage}
	},
	gin.MIMEJSON: func([]byte) notFoundBody {
		return notFoundBody{contentType: "application/json; charset=utf-8", body: []byte(`{"error":"` + notFoundText + `"}`)}
	},
	gin.MIMEPlain: func([]byte) notFoundBody {
		return notFoundBody{contentType: "text/plain; charset=utf-8", body: []byte(notFoundText)}
	},
}

var notFoundPreference = []string{gin.MIMEHTML, gin.MIMEJSON, gin.MIMEPlain}

// negotiateNotFound returns the first of html, json and plain text the
// client accepts, regardless of the order inside its Accept header.
// Unknown media types fall back to text.
func negotiateNotFound(c *gin.Context) string {
	for _, format := range notFoundPreference {
		if c.NegotiateFormat(format) == format {
			return format
		}
	}
	return gin.MIMEPlain
}

func notFoundHandler(htmlPage []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		rendered := notFoundRenderers[negotiateNotFound(c)](htmlPage)
		c.Data(http.StatusNotFound, rendered.contentType, rendered.body)
	}
}
