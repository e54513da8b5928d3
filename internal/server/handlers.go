package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alkime/cotola/internal/ai"
	"github.com/alkime/cotola/internal/content"
	"github.com/alkime/cotola/internal/format"
	"github.com/alkime/cotola/internal/post"
)

// User-facing error messages.
const (
	msgInvalidGenerate = "生成のためのデータが無効です。"
	msgInvalidRefine   = "修正のためのデータが無効です。"
	msgInvalidFormat   = "整形のためのデータが無効です。"
	msgInvalidAction   = "無効なアクションです。"
	msgMissingRequired = "必須項目(*)をすべて入力してください。"
	msgStoryCount      = "ストーリーズの枚数は1から5の間で指定してください。"
	msgMissingAPIKey   = "サーバー内部でエラーが発生しました。管理者に連絡してください。"
	msgUnauthorized    = "サーバーでAPI認証に失敗しました。設定を確認してください。"
	msgUpstreamPrefix  = "AIサービスとの通信中にエラーが発生しました: "
)

// actionRequest is the single-endpoint form: {action, data}.
type actionRequest struct {
	Action content.Action  `json:"action"`
	Data   json.RawMessage `json:"data"`
}

type formatRequest struct {
	Text     string        `json:"text"`
	Platform post.Platform `json:"platform"`
	Strip    bool          `json:"strip,omitempty"`
}

type formatResponse struct {
	Text      string `json:"text"`
	CharCount int    `json:"charCount"`
}

type optionsResponse struct {
	Platforms   []post.Option `json:"platforms"`
	Tones       []post.Option `json:"tones"`
	StoryCounts []post.Option `json:"storyCounts"`
}

func (s *Server) handleOptions(c *gin.Context) {
	c.JSON(http.StatusOK, optionsResponse{
		Platforms:   post.Platforms(),
		Tones:       post.Tones(),
		StoryCounts: post.StoryCounts(),
	})
}

func (s *Server) handleGenerate(c *gin.Context) {
	var data post.FormData
	if err := c.ShouldBindJSON(&data); err != nil {
		s.badRequest(c, msgInvalidGenerate, err)
		return
	}

	s.generate(c, data)
}

func (s *Server) handleRefine(c *gin.Context) {
	var in post.RefineRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		s.badRequest(c, msgInvalidRefine, err)
		return
	}

	s.refine(c, in)
}

// handleAction serves both operations behind one endpoint keyed by action.
func (s *Server) handleAction(c *gin.Context) {
	var req actionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, msgInvalidAction, err)
		return
	}

	switch req.Action {
	case content.ActionGenerate:
		var data post.FormData
		if err := decodeData(req.Data, &data); err != nil {
			s.badRequest(c, msgInvalidGenerate, err)
			return
		}
		s.generate(c, data)
	case content.ActionRefine:
		var in post.RefineRequest
		if err := decodeData(req.Data, &in); err != nil {
			s.badRequest(c, msgInvalidRefine, err)
			return
		}
		s.refine(c, in)
	default:
		s.badRequest(c, msgInvalidAction, errors.New("unknown action "+string(req.Action)))
	}
}

func (s *Server) handleFormat(c *gin.Context) {
	var req formatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, msgInvalidFormat, err)
		return
	}

	text := format.Strip(req.Text)
	if !req.Strip {
		text = format.Apply(text, req.Platform)
	}

	c.JSON(http.StatusOK, formatResponse{
		Text:      text,
		CharCount: format.CharCount(text),
	})
}

func (s *Server) generate(c *gin.Context, data post.FormData) {
	result, err := s.generator.Generate(c.Request.Context(), data)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) refine(c *gin.Context, in post.RefineRequest) {
	result, err := s.generator.Refine(c.Request.Context(), in)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) badRequest(c *gin.Context, message string, err error) {
	requestLogger(c, s.logger).Warn("Rejected request", "error", err)
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// fail maps service errors to a status code and user-facing message.
func (s *Server) fail(c *gin.Context, err error) {
	status, message := errorResponse(err)

	logger := requestLogger(c, s.logger)
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", "status", status, "error", err)
	} else {
		logger.Warn("Request failed", "status", status, "error", err)
	}

	c.JSON(status, gin.H{"error": message})
}

func errorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, post.ErrMissingRequired):
		return http.StatusBadRequest, msgMissingRequired
	case errors.Is(err, post.ErrStoryCount):
		return http.StatusBadRequest, msgStoryCount
	case errors.Is(err, post.ErrInvalidRefine):
		return http.StatusBadRequest, msgInvalidRefine
	case errors.Is(err, ai.ErrMissingAPIKey):
		return http.StatusInternalServerError, msgMissingAPIKey
	case errors.Is(err, ai.ErrUnauthorized):
		return http.StatusUnauthorized, msgUnauthorized
	default:
		return http.StatusInternalServerError, msgUpstreamPrefix + err.Error()
	}
}

func decodeData(raw json.RawMessage, v any) error {
	if len(raw) == 0 || string(raw) == "null" {
		return errors.New("data is missing")
	}

	return json.Unmarshal(raw, v)
}
