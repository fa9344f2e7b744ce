package domain

import "github.com/google/uuid"

type SendMessageCommand struct {
	ConversationID uuid.UUID
	SenderID       string `validate:"required"`
	Text           string `validate:"required,max=4000"`
}

type EditMessageCommand struct {
	MessageID uuid.UUID
	EditorID  string `validate:"required"`
	Text      string `validate:"required,max=4000"`
}

type CreateConversationCommand struct {
	CreatorID    string           `validate:"required"`
	Participants []string         `validate:"required,min=2,unique,dive,required"`
	Kind         ConversationKind `validate:"required,oneof=direct group"`
}

type GetMessagesCommand struct {
	ConversationID uuid.UUID
	RequesterID    string `validate:"required"`
	Page           int    `validate:"min=1"`
	Limit          int    `validate:"min=1,max=100"`
}
