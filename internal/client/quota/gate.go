// Package quota computes client-side gates from the server's usage
// snapshots. A gate only hides actions the server would refuse; the server
// re-checks every request.
package quota

import (
	"errors"
	"fmt"

	"github.com/sachink160/multitool-client/internal/client/models"
)

var ErrQuotaExhausted = errors.New("quota exhausted")

// Feature names a metered capability.
type Feature string

const (
	FeatureChats           Feature = "chats"
	FeatureDocuments       Feature = "documents"
	FeatureHRDocuments     Feature = "hr_documents"
	FeatureVideos          Feature = "video_uploads"
	FeaturePromptDocuments Feature = "dynamic_prompt_documents"
	FeatureImages          Feature = "images"
)

// Gate is the used/max pair of one feature from the latest snapshot. The
// zero Gate is unknown and allows everything.
type Gate struct {
	Feature Feature
	Used    int
	Max     int
	Known   bool
}

func (g Gate) Remaining() int {
	return g.Max - g.Used
}

// Allowed reports whether the action should be offered: remaining > 0, or
// no snapshot has been fetched yet.
func (g Gate) Allowed() bool {
	return !g.Known || g.Remaining() > 0
}

// Check returns ErrQuotaExhausted when the gate is closed.
func (g Gate) Check() error {
	if g.Allowed() {
		return nil
	}
	return fmt.Errorf("%w: %s (%d of %d used this month)", ErrQuotaExhausted, g.Feature, g.Used, g.Max)
}

// FromUsage builds the gate for feature from a monthly usage snapshot. A
// nil snapshot yields an unknown gate.
func FromUsage(u *models.UsageInfo, feature Feature) Gate {
	if u == nil {
		return Gate{Feature: feature}
	}
	g := Gate{Feature: feature, Known: true}
	switch feature {
	case FeatureChats:
		g.Used, g.Max = u.ChatsUsed, u.MaxChats
	case FeatureDocuments:
		g.Used, g.Max = u.DocumentsUploaded, u.MaxDocuments
	case FeatureHRDocuments:
		g.Used, g.Max = u.HRDocumentsUploaded, u.MaxHRDocuments
	case FeatureVideos:
		g.Used, g.Max = u.VideoUploads, u.MaxVideoUploads
	case FeaturePromptDocuments:
		g.Used, g.Max = u.DynamicPromptDocumentsUploaded, u.MaxDynamicPromptDocuments
	default:
		return Gate{Feature: feature}
	}
	return g
}

// FromImageInfo builds the image gate. An explicit remaining count from the
// server takes precedence over max - used.
func FromImageInfo(info *models.ImageSubscriptionInfo) Gate {
	if info == nil {
		return Gate{Feature: FeatureImages}
	}
	g := Gate{Feature: FeatureImages, Used: info.ImagesUsed, Max: info.MaxImages, Known: true}
	if info.ImagesRemaining != nil {
		g.Used = info.MaxImages - *info.ImagesRemaining
	}
	return g
}
