package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/tidwall/pretty"
)

// APIResponse is the printable outcome of one call against the watcher's
// status API, regardless of whether it was a plain request, a typed one or a
// websocket stream.
type APIResponse interface {
	Print() error
	Err() error
}

var _ APIResponse = &CommonAPIResponse{}

// CommonAPIResponse carries the raw response body. JSON bodies are indented
// and colorized on Print; anything else is echoed as-is.
type CommonAPIResponse struct {
	StatusCode  int    `json:"statusCode"`
	Body        string `json:"body"`
	Error       error  `json:"error"`
	contentType string
}

func NewAPIResponse(resp *http.Response, err error) APIResponse {
	apiRes := &CommonAPIResponse{
		Error: err,
	}
	if resp == nil {
		return apiRes
	}

	apiRes.StatusCode = resp.StatusCode
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Errorf("failed to read status response body: %s", err.Error())
		return apiRes
	}
	apiRes.Body = string(body)
	apiRes.contentType = resp.Header.Get("Content-Type")
	return apiRes
}

func (resp *CommonAPIResponse) Err() error {
	return resp.Error
}

func (resp *CommonAPIResponse) Print() error {
	if resp.Error != nil {
		fmt.Println(resp.Error.Error())
		return nil
	}
	if len(resp.Body) == 0 {
		return nil
	}

	out := resp.Body
	if resp.contentType == "application/json" {
		var buf bytes.Buffer
		if err := json.Indent(&buf, []byte(resp.Body), "", "    "); err != nil {
			return err
		}
		out = string(pretty.Color(buf.Bytes(), nil))
	}

	fmt.Println(out)
	return nil
}
