package service

import (
	"context"
	"fmt"
	"strings"

	"phorum/internal/logger"
	"phorum/internal/metrics"
	"phorum/internal/model"
)

const (
	// BotUsername is the seeded system account that authors bot replies.
	BotUsername = "antiphish"
	// botMarker is the literal substring in a reply body that invokes the bot.
	botMarker = "@antiphish run check"
)

// extractCheckTarget scans a reply body for the bot marker. When present it
// returns the trimmed text after the first occurrence (may be empty).
func extractCheckTarget(body string) (target string, triggered bool) {
	idx := strings.Index(body, botMarker)
	if idx < 0 {
		return "", false
	}
	return strings.TrimSpace(body[idx+len(botMarker):]), true
}

// botReportBody renders the fixed safety-report template. The check itself
// is a stub; no real analysis happens.
func botReportBody(target string) string {
	return fmt.Sprintf("[AntiPhish Bot] Safety report for %s:\nThis is a placeholder response.", target)
}

// runBotCheck synthesizes exactly one bot reply when the body carries the
// marker. Failures are logged and skipped: the triggering reply has already
// been persisted and must survive.
func (s *postService) runBotCheck(ctx context.Context, postID uint, body string) {
	target, triggered := extractCheckTarget(body)
	if !triggered {
		return
	}

	log := logger.Get()

	bot, err := s.users.FindByUsername(ctx, BotUsername)
	if err != nil {
		metrics.BotCheckSkipsTotal.Inc()
		log.Warn().Err(err).Uint("post_id", postID).
			Msg("bot account unresolvable, skipping safety report")
		return
	}

	botReply := &model.Reply{
		Body:     botReportBody(target),
		AuthorID: bot.ID,
		PostID:   postID,
	}
	if err := s.replies.Create(ctx, botReply); err != nil {
		metrics.BotCheckSkipsTotal.Inc()
		log.Warn().Err(err).Uint("post_id", postID).
			Msg("persist bot reply failed, skipping safety report")
		return
	}
	metrics.RepliesCreatedTotal.WithLabelValues("bot").Inc()
}
