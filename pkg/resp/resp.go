package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"arealookup/pkg/json"
	"arealookup/pkg/utils/v"
)

// JSON writes data with the json-iterator encoder
func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.Render(statusCode, jsonRender{Data: data})
}

type jsonRender struct {
	Data interface{}
}

func (r jsonRender) Render(w http.ResponseWriter) error {
	r.WriteContentType(w)
	body, err := json.Marshal(r.Data)
	if err != nil {
		return err
	}
	_, err = w.Write(body)
	return err
}

func (r jsonRender) WriteContentType(w http.ResponseWriter) {
	header := w.Header()
	if val := header[v.HeaderContentType]; len(val) == 0 {
		header[v.HeaderContentType] = []string{v.MIMEJSONUTF8}
	}
}
