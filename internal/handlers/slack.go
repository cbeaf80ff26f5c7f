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

package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/projectsdb/internal/services"
	"github.com/localnerve/projectsdb/internal/types"
	"github.com/localnerve/projectsdb/internal/utils"
)

// SlackHandler relays messages and files to Slack
type SlackHandler struct {
	Notifier *services.SlackNotifier
}

// SlackMessageRequest is the JSON body of POST /api/slack/send-message
type SlackMessageRequest struct {
	Message string                 `json:"message"`
	Channel string                 `json:"channel"`
	Teams   types.FlexList[string] `json:"teams"`
}

// SlackResponse reports per-team delivery
type SlackResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message,omitempty"`
	Error   string                `json:"error,omitempty"`
	Results services.SlackResults `json:"results"`
}

// SendMessage handles POST /api/slack/send-message
// @Summary Send a Slack message or file
// @Description JSON bodies relay a message; multipart bodies relay a file to each team
// @Tags Slack
// @Accept json
// @Accept mpfd
// @Produce json
// @Param message body SlackMessageRequest false "Message"
// @Success 200 {object} SlackResponse
// @Success 207 {object} SlackResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /slack/send-message [post]
func (h *SlackHandler) SendMessage(c *fiber.Ctx) error {
	contentType := strings.ToLower(c.Get(fiber.HeaderContentType))

	switch {
	case strings.HasPrefix(contentType, fiber.MIMEApplicationJSON):
		var body SlackMessageRequest
		if err := c.BodyParser(&body); err != nil {
			return utils.FailureResponse(c, bodyError(err))
		}
		if strings.TrimSpace(body.Message) == "" {
			return utils.FailureResponse(c, types.ValidationError("Message is required"))
		}

		teams := body.Teams.OrDefault(services.DefaultTeam)
		results := h.Notifier.SendMessage(c.UserContext(), body.Message, body.Channel, teams)
		return slackReply(c, results, "Message sent to %d team(s) successfully", "Failed to send message to %d of %d team(s)")

	case strings.HasPrefix(contentType, fiber.MIMEMultipartForm):
		return h.sendFile(c)
	}

	return utils.FailureResponse(c, types.ValidationError("Unsupported content type"))
}

// UploadFile handles POST /api/slack/upload-file
// @Summary Upload a file to Slack
// @Tags Slack
// @Accept mpfd
// @Produce json
// @Param file formData file true "File"
// @Param message formData string false "Message"
// @Param channel formData string false "Channel"
// @Param teams formData string false "JSON array of teams"
// @Success 200 {object} SlackResponse
// @Success 207 {object} SlackResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /slack/upload-file [post]
func (h *SlackHandler) UploadFile(c *fiber.Ctx) error {
	if !strings.HasPrefix(strings.ToLower(c.Get(fiber.HeaderContentType)), fiber.MIMEMultipartForm) {
		return utils.FailureResponse(c, types.ValidationError("Unsupported content type"))
	}
	return h.sendFile(c)
}

func (h *SlackHandler) sendFile(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		return utils.FailureResponse(c, types.ValidationError("File is required"))
	}

	file, err := header.Open()
	if err != nil {
		return utils.FailureResponse(c, types.ValidationError("File could not be read"))
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return utils.FailureResponse(c, types.ValidationError("File could not be read"))
	}

	var teams types.FlexList[string]
	if raw := c.FormValue("teams"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &teams); err != nil {
			return utils.FailureResponse(c, types.ValidationError("Invalid teams list"))
		}
	}

	results := h.Notifier.SendFile(c.UserContext(), content, header.Filename,
		c.FormValue("message"), c.FormValue("channel"), teams.OrDefault(services.DefaultTeam))

	success := "File info sent to %d team(s)"
	if h.Notifier.CanUploadFiles() && c.FormValue("channel") != "" {
		success = "File uploaded for %d team(s)"
	}
	return slackReply(c, results, success, "Failed to send file to %d of %d team(s)")
}

func slackReply(c *fiber.Ctx, results services.SlackResults, success, failure string) error {
	failed := results.Failed()
	if failed == 0 {
		return utils.SuccessResponse(c, SlackResponse{
			Success: true,
			Message: fmt.Sprintf(success, len(results)),
			Results: results,
		}, fiber.StatusOK)
	}

	return utils.SuccessResponse(c, SlackResponse{
		Success: false,
		Error:   fmt.Sprintf(failure, failed, len(results)),
		Results: results,
	}, fiber.StatusMultiStatus)
}
