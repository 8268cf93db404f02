package handlers

import (
	"encoding/json"
	"io"
	"net/url"

	"meetbot/models"
	"meetbot/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// decodeWebhookBody parses a webhook body into out, tolerating every encoding
// the chat client is known to send: a JSON body, a form body with a `payload`
// field containing JSON, or plain form fields. It never fails; a body that
// resists all three leaves out at its zero value so fields read as absent.
func decodeWebhookBody(c *gin.Context, out any) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.GetLogger().Warn("webhook: read body failed", zap.Error(err))
		return
	}
	if len(body) == 0 {
		return
	}

	if json.Unmarshal(body, out) == nil {
		return
	}

	vals, err := url.ParseQuery(string(body))
	if err != nil {
		utils.GetLogger().Warn("webhook: unparseable body, treating fields as absent")
		return
	}
	if p := vals.Get("payload"); p != "" && json.Unmarshal([]byte(p), out) == nil {
		return
	}

	// Last resort: map flat form fields through a JSON round-trip so they
	// land on the matching top-level keys of out.
	flat := make(map[string]string, len(vals))
	for k := range vals {
		flat[k] = vals.Get(k)
	}
	if data, err := json.Marshal(flat); err == nil {
		_ = json.Unmarshal(data, out)
	}
}

// normalizeAction folds the legacy actions[0].name/value form into the
// actionName/actionValue fields.
func normalizeAction(req *models.ActionRequest) {
	if req.ActionValue == "" && len(req.Actions) > 0 {
		req.ActionValue = req.Actions[0].Value
		if req.Actions[0].Name != "" {
			req.ActionName = req.Actions[0].Name
		}
	}
}
