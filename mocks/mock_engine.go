// Code generated by MockGen. DO NOT EDIT.
// Source: engine.go
//
// Generated by this command:
//
//	mockgen -source=engine.go -destination=../mocks/mock_engine.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	domain "chatgram/domain"
	context "context"
	reflect "reflect"

	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockIEngine is a mock of IEngine interface.
type MockIEngine struct {
	ctrl     *gomock.Controller
	recorder *MockIEngineMockRecorder
	isgomock struct{}
}

// MockIEngineMockRecorder is the mock recorder for MockIEngine.
type MockIEngineMockRecorder struct {
	mock *MockIEngine
}

// NewMockIEngine creates a new mock instance.
func NewMockIEngine(ctrl *gomock.Controller) *MockIEngine {
	mock := &MockIEngine{ctrl: ctrl}
	mock.recorder = &MockIEngineMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIEngine) EXPECT() *MockIEngineMockRecorder {
	return m.recorder
}

// AcknowledgeView mocks base method.
func (m *MockIEngine) AcknowledgeView(ctx context.Context, conversationID uuid.UUID, userID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AcknowledgeView", ctx, conversationID, userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// AcknowledgeView indicates an expected call of AcknowledgeView.
func (mr *MockIEngineMockRecorder) AcknowledgeView(ctx, conversationID, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AcknowledgeView", reflect.TypeOf((*MockIEngine)(nil).AcknowledgeView), ctx, conversationID, userID)
}

// CatchUp mocks base method.
func (m *MockIEngine) CatchUp(ctx context.Context, userID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CatchUp", ctx, userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// CatchUp indicates an expected call of CatchUp.
func (mr *MockIEngineMockRecorder) CatchUp(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CatchUp", reflect.TypeOf((*MockIEngine)(nil).CatchUp), ctx, userID)
}

// DeleteConversation mocks base method.
func (m *MockIEngine) DeleteConversation(ctx context.Context, conversationID uuid.UUID, requesterID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteConversation", ctx, conversationID, requesterID)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteConversation indicates an expected call of DeleteConversation.
func (mr *MockIEngineMockRecorder) DeleteConversation(ctx, conversationID, requesterID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteConversation", reflect.TypeOf((*MockIEngine)(nil).DeleteConversation), ctx, conversationID, requesterID)
}

// DeleteMessage mocks base method.
func (m *MockIEngine) DeleteMessage(ctx context.Context, messageID uuid.UUID, deleterID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteMessage", ctx, messageID, deleterID)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteMessage indicates an expected call of DeleteMessage.
func (mr *MockIEngineMockRecorder) DeleteMessage(ctx, messageID, deleterID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteMessage", reflect.TypeOf((*MockIEngine)(nil).DeleteMessage), ctx, messageID, deleterID)
}

// EditMessage mocks base method.
func (m *MockIEngine) EditMessage(ctx context.Context, cmd domain.EditMessageCommand) (domain.Message, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "EditMessage", ctx, cmd)
	ret0, _ := ret[0].(domain.Message)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// EditMessage indicates an expected call of EditMessage.
func (mr *MockIEngineMockRecorder) EditMessage(ctx, cmd any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "EditMessage", reflect.TypeOf((*MockIEngine)(nil).EditMessage), ctx, cmd)
}

// GetMessages mocks base method.
func (m *MockIEngine) GetMessages(ctx context.Context, cmd domain.GetMessagesCommand) ([]domain.Message, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetMessages", ctx, cmd)
	ret0, _ := ret[0].([]domain.Message)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetMessages indicates an expected call of GetMessages.
func (mr *MockIEngineMockRecorder) GetMessages(ctx, cmd any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetMessages", reflect.TypeOf((*MockIEngine)(nil).GetMessages), ctx, cmd)
}

// SendMessage mocks base method.
func (m *MockIEngine) SendMessage(ctx context.Context, cmd domain.SendMessageCommand) (domain.Message, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SendMessage", ctx, cmd)
	ret0, _ := ret[0].(domain.Message)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SendMessage indicates an expected call of SendMessage.
func (mr *MockIEngineMockRecorder) SendMessage(ctx, cmd any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SendMessage", reflect.TypeOf((*MockIEngine)(nil).SendMessage), ctx, cmd)
}

// UpdateMessageStatus mocks base method.
func (m *MockIEngine) UpdateMessageStatus(ctx context.Context, messageID uuid.UUID, userID string, status domain.MessageStatus) (domain.Message, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateMessageStatus", ctx, messageID, userID, status)
	ret0, _ := ret[0].(domain.Message)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateMessageStatus indicates an expected call of UpdateMessageStatus.
func (mr *MockIEngineMockRecorder) UpdateMessageStatus(ctx, messageID, userID, status any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateMessageStatus", reflect.TypeOf((*MockIEngine)(nil).UpdateMessageStatus), ctx, messageID, userID, status)
}
