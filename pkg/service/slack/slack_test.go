package slack_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/bugtrail/pkg/domain/model"
	"github.com/secmon-lab/bugtrail/pkg/domain/types"
	slackSvc "github.com/secmon-lab/bugtrail/pkg/service/slack"
)

type postedMessage struct {
	Channel string
	Text    string
	Blocks  string
}

func newSlackServer(t *testing.T, ok bool) (*httptest.Server, func() []postedMessage) {
	t.Helper()

	var mu sync.Mutex
	var posted []postedMessage

	mux := http.NewServeMux()
	mux.HandleFunc("/chat.postMessage", func(w http.ResponseWriter, r *http.Request) {
		gt.NoError(t, r.ParseForm())
		mu.Lock()
		posted = append(posted, postedMessage{
			Channel: r.FormValue("channel"),
			Text:    r.FormValue("text"),
			Blocks:  r.FormValue("blocks"),
		})
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if ok {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"ok": true, "channel": r.FormValue("channel"), "ts": "1700000000.000100",
			})
		} else {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"ok": false, "error": "channel_not_found",
			})
		}
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server, func() []postedMessage {
		mu.Lock()
		defer mu.Unlock()
		return append([]postedMessage(nil), posted...)
	}
}

func testBug() *model.BugReport {
	bug := model.NewBugReport("Checkout crashes", "Stack trace\nattached", "critical", "open", "alice", "")
	bug.ID = types.BugID("bug-123")
	return bug
}

func TestService_NotifyBugCreated(t *testing.T) {
	server, posted := newSlackServer(t, true)
	svc := slackSvc.New("xoxb-test", "C0BUGS", slackSvc.WithAPIURL(server.URL+"/"))

	gt.NoError(t, svc.NotifyBugCreated(context.Background(), testBug()))

	msgs := posted()
	gt.Equal(t, len(msgs), 1)
	gt.Equal(t, msgs[0].Channel, "C0BUGS")
	gt.Equal(t, msgs[0].Text, "[critical] Checkout crashes")
	gt.S(t, msgs[0].Blocks).Contains("Checkout crashes")
	gt.S(t, msgs[0].Blocks).Contains("bug-123")
}

func TestService_NotifyStatusChanged(t *testing.T) {
	server, posted := newSlackServer(t, true)
	svc := slackSvc.New("xoxb-test", "C0BUGS", slackSvc.WithAPIURL(server.URL+"/"))

	bug := testBug()
	bug.Status = types.BugStatusResolved
	gt.NoError(t, svc.NotifyStatusChanged(context.Background(), bug, types.BugStatusOpen))

	msgs := posted()
	gt.Equal(t, len(msgs), 1)
	gt.S(t, msgs[0].Blocks).Contains("Status changed")
	gt.S(t, msgs[0].Blocks).Contains("resolved")
}

func TestService_NotifyError(t *testing.T) {
	server, _ := newSlackServer(t, false)
	svc := slackSvc.New("xoxb-test", "C0MISSING", slackSvc.WithAPIURL(server.URL+"/"))

	err := svc.NotifyBugCreated(context.Background(), testBug())
	gt.Error(t, err)
	gt.S(t, err.Error()).Contains("failed to notify bug creation")
}
