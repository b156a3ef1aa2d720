package event

// Event names carried in the Kafka message key.
const (
	ENGAGEMENT_COMMENT = "engagement.comment"
)

// EngagementCommentMessage asks the worker to mail a post's author about a
// new comment. IDs only: the worker re-reads profiles at send time so a
// rename between comment and delivery does not produce a stale email.
type EngagementCommentMessage struct {
	PostID      string `json:"post_id"`
	CommentID   string `json:"comment_id"`
	RecipientID string `json:"recipient_id"`
	ActorID     string `json:"actor_id"`
	Content     string `json:"content"`
}
