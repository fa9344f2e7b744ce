// Code generated by MockGen. DO NOT EDIT.
// Source: chat_service.go
//
// Generated by this command:
//
//	mockgen -source=chat_service.go -destination=../mocks/mock_chat_service.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	domain "chatgram/domain"
	services "chatgram/services"
	context "context"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockIChatService is a mock of IChatService interface.
type MockIChatService struct {
	ctrl     *gomock.Controller
	recorder *MockIChatServiceMockRecorder
	isgomock struct{}
}

// MockIChatServiceMockRecorder is the mock recorder for MockIChatService.
type MockIChatServiceMockRecorder struct {
	mock *MockIChatService
}

// NewMockIChatService creates a new mock instance.
func NewMockIChatService(ctrl *gomock.Controller) *MockIChatService {
	mock := &MockIChatService{ctrl: ctrl}
	mock.recorder = &MockIChatServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIChatService) EXPECT() *MockIChatServiceMockRecorder {
	return m.recorder
}

// CreateConversation mocks base method.
func (m *MockIChatService) CreateConversation(ctx context.Context, cmd domain.CreateConversationCommand) (domain.Conversation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateConversation", ctx, cmd)
	ret0, _ := ret[0].(domain.Conversation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateConversation indicates an expected call of CreateConversation.
func (mr *MockIChatServiceMockRecorder) CreateConversation(ctx, cmd any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateConversation", reflect.TypeOf((*MockIChatService)(nil).CreateConversation), ctx, cmd)
}

// GetOrCreateDirect mocks base method.
func (m *MockIChatService) GetOrCreateDirect(ctx context.Context, userID, peerID string) (domain.Conversation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetOrCreateDirect", ctx, userID, peerID)
	ret0, _ := ret[0].(domain.Conversation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetOrCreateDirect indicates an expected call of GetOrCreateDirect.
func (mr *MockIChatServiceMockRecorder) GetOrCreateDirect(ctx, userID, peerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetOrCreateDirect", reflect.TypeOf((*MockIChatService)(nil).GetOrCreateDirect), ctx, userID, peerID)
}

// GetUserConversations mocks base method.
func (m *MockIChatService) GetUserConversations(ctx context.Context, userID string) ([]services.ConversationSummary, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUserConversations", ctx, userID)
	ret0, _ := ret[0].([]services.ConversationSummary)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetUserConversations indicates an expected call of GetUserConversations.
func (mr *MockIChatServiceMockRecorder) GetUserConversations(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUserConversations", reflect.TypeOf((*MockIChatService)(nil).GetUserConversations), ctx, userID)
}
