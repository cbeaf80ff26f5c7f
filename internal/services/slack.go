// slack.go
//
// Agency project tracker that provisions project phases and tasks from service templates
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of projectsdb.
// projectsdb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// projectsdb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with projectsdb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/imroc/req/v3"
	"github.com/localnerve/projectsdb/internal/config"
	"github.com/localnerve/projectsdb/internal/logutils"
	"github.com/samber/lo"
	"github.com/slack-go/slack"
)

// DefaultTeam is the team used when a request names none
const DefaultTeam = "default"

const unconfiguredTeam = "unconfigured"

// SlackResult is the delivery outcome for one team
type SlackResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// SlackResults maps team name to its delivery outcome
type SlackResults map[string]SlackResult

// Failed counts the teams whose delivery failed
func (r SlackResults) Failed() int {
	return lo.CountBy(lo.Values(r), func(result SlackResult) bool {
		return !result.Success
	})
}

// SlackNotifier relays messages to per-team Slack incoming webhooks, and uploads files
// through the Web API when a bot token is configured
type SlackNotifier struct {
	webhooks map[string]string
	client   *req.Client
	api      *slack.Client
}

// NewSlackNotifier builds a notifier from the configured webhooks and bot token
func NewSlackNotifier(cfg *config.Config) *SlackNotifier {
	timeout := time.Duration(cfg.SlackTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := req.C().
		SetTimeout(timeout).
		SetUserAgent("projectsdb-slack-notifier")

	notifier := &SlackNotifier{
		webhooks: cfg.SlackWebhooks,
		client:   client,
	}
	if cfg.SlackBotToken != "" {
		notifier.api = slack.New(cfg.SlackBotToken, slack.OptionHTTPClient(client.GetClient()))
	}
	return notifier
}

// CanUploadFiles reports whether a bot token is configured
func (n *SlackNotifier) CanUploadFiles() bool {
	return n.api != nil
}

// webhookFor returns the team's webhook, falling back to the default team's
func (n *SlackNotifier) webhookFor(team string) (string, bool) {
	if url, ok := n.webhooks[team]; ok && url != "" {
		return url, true
	}
	url, ok := n.webhooks[DefaultTeam]
	return url, ok && url != ""
}

// metricTeam is the team label for delivery metrics. Teams without their own webhook share
// one label so request bodies cannot grow the series count.
func (n *SlackNotifier) metricTeam(team string) string {
	if _, ok := n.webhooks[team]; ok {
		return team
	}
	return unconfiguredTeam
}

// SendMessage posts the message to each team's webhook in turn
func (n *SlackNotifier) SendMessage(ctx context.Context, message, channel string, teams []string) SlackResults {
	results := make(SlackResults, len(teams))
	for _, team := range normalizeTeams(teams) {
		results[team] = n.sendToTeam(ctx, message, channel, team)
	}
	return results
}

// SendFile delivers a file to each team. With a bot token and a channel the file is uploaded;
// otherwise each team gets a message describing the file.
func (n *SlackNotifier) SendFile(ctx context.Context, file []byte, name, message, channel string, teams []string) SlackResults {
	teams = normalizeTeams(teams)
	results := make(SlackResults, len(teams))

	if n.api != nil && channel != "" {
		result := n.upload(ctx, file, name, message, channel)
		for _, team := range teams {
			results[team] = result
		}
		return results
	}

	fileInfo := fmt.Sprintf("File: %s (%.2f KB)", name, float64(len(file))/1024)
	fullMessage := fileInfo
	if message != "" {
		fullMessage = message + "\n" + fileInfo
	}

	for _, team := range teams {
		results[team] = n.sendToTeam(ctx, fullMessage, channel, team)
	}
	return results
}

func (n *SlackNotifier) sendToTeam(ctx context.Context, message, channel, team string) SlackResult {
	label := n.metricTeam(team)
	url, ok := n.webhookFor(team)
	if !ok {
		slackDeliveries.WithLabelValues(label, "unconfigured").Inc()
		return SlackResult{Error: fmt.Sprintf("Webhook URL not configured for %s team", team)}
	}

	payload := &slack.WebhookMessage{
		Text:    message,
		Channel: channel,
	}

	resp, err := n.client.R().
		SetContext(ctx).
		SetBody(payload).
		Post(url)
	if err != nil {
		logutils.Log.WithError(err).WithField("team", team).Error("Slack webhook request failed")
		slackDeliveries.WithLabelValues(label, "error").Inc()
		return SlackResult{Error: err.Error()}
	}
	if !resp.IsSuccessState() {
		logutils.Log.WithFields(logutils.Fields{
			"team":   team,
			"status": resp.StatusCode,
		}).Error("Slack webhook rejected message")
		slackDeliveries.WithLabelValues(label, "rejected").Inc()
		return SlackResult{Error: fmt.Sprintf("Slack responded %d: %s", resp.StatusCode, resp.String())}
	}

	slackDeliveries.WithLabelValues(label, "ok").Inc()
	return SlackResult{Success: true}
}

func (n *SlackNotifier) upload(ctx context.Context, file []byte, name, message, channel string) SlackResult {
	_, err := n.api.UploadFileV2Context(ctx, slack.UploadFileV2Parameters{
		Reader:         bytes.NewReader(file),
		FileSize:       len(file),
		Filename:       name,
		Title:          name,
		InitialComment: message,
		Channel:        channel,
	})
	if err != nil {
		logutils.Log.WithError(err).WithField("channel", channel).Error("Slack file upload failed")
		slackDeliveries.WithLabelValues("upload", "error").Inc()
		return SlackResult{Error: err.Error()}
	}

	slackDeliveries.WithLabelValues("upload", "ok").Inc()
	return SlackResult{Success: true}
}

func normalizeTeams(teams []string) []string {
	teams = lo.Uniq(lo.Compact(teams))
	if len(teams) == 0 {
		return []string{DefaultTeam}
	}
	return teams
}
