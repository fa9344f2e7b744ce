// Code generated by MockGen. DO NOT EDIT.
// Source: message.go
//
// Generated by this command:
//
//	mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	domain "chatgram/domain"
	reflect "reflect"

	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockIMessageRepository is a mock of IMessageRepository interface.
type MockIMessageRepository struct {
	ctrl     *gomock.Controller
	recorder *MockIMessageRepositoryMockRecorder
	isgomock struct{}
}

// MockIMessageRepositoryMockRecorder is the mock recorder for MockIMessageRepository.
type MockIMessageRepositoryMockRecorder struct {
	mock *MockIMessageRepository
}

// NewMockIMessageRepository creates a new mock instance.
func NewMockIMessageRepository(ctrl *gomock.Controller) *MockIMessageRepository {
	mock := &MockIMessageRepository{ctrl: ctrl}
	mock.recorder = &MockIMessageRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIMessageRepository) EXPECT() *MockIMessageRepositoryMockRecorder {
	return m.recorder
}

// CountUnread mocks base method.
func (m *MockIMessageRepository) CountUnread(conversationID uuid.UUID, userID string) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountUnread", conversationID, userID)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountUnread indicates an expected call of CountUnread.
func (mr *MockIMessageRepositoryMockRecorder) CountUnread(conversationID, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountUnread", reflect.TypeOf((*MockIMessageRepository)(nil).CountUnread), conversationID, userID)
}

// DeleteConversationMessages mocks base method.
func (m *MockIMessageRepository) DeleteConversationMessages(conversationID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteConversationMessages", conversationID)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteConversationMessages indicates an expected call of DeleteConversationMessages.
func (mr *MockIMessageRepositoryMockRecorder) DeleteConversationMessages(conversationID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteConversationMessages", reflect.TypeOf((*MockIMessageRepository)(nil).DeleteConversationMessages), conversationID)
}

// DeleteMessage mocks base method.
func (m *MockIMessageRepository) DeleteMessage(id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteMessage", id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteMessage indicates an expected call of DeleteMessage.
func (mr *MockIMessageRepositoryMockRecorder) DeleteMessage(id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteMessage", reflect.TypeOf((*MockIMessageRepository)(nil).DeleteMessage), id)
}

// GetMessage mocks base method.
func (m *MockIMessageRepository) GetMessage(id uuid.UUID) (domain.Message, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetMessage", id)
	ret0, _ := ret[0].(domain.Message)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetMessage indicates an expected call of GetMessage.
func (mr *MockIMessageRepositoryMockRecorder) GetMessage(id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetMessage", reflect.TypeOf((*MockIMessageRepository)(nil).GetMessage), id)
}

// GetMessages mocks base method.
func (m *MockIMessageRepository) GetMessages(conversationID uuid.UUID, page, limit int) ([]domain.Message, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetMessages", conversationID, page, limit)
	ret0, _ := ret[0].([]domain.Message)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetMessages indicates an expected call of GetMessages.
func (mr *MockIMessageRepositoryMockRecorder) GetMessages(conversationID, page, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetMessages", reflect.TypeOf((*MockIMessageRepository)(nil).GetMessages), conversationID, page, limit)
}

// LastMessage mocks base method.
func (m *MockIMessageRepository) LastMessage(conversationID uuid.UUID) (domain.Message, bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LastMessage", conversationID)
	ret0, _ := ret[0].(domain.Message)
	ret1, _ := ret[1].(bool)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// LastMessage indicates an expected call of LastMessage.
func (mr *MockIMessageRepositoryMockRecorder) LastMessage(conversationID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LastMessage", reflect.TypeOf((*MockIMessageRepository)(nil).LastMessage), conversationID)
}

// ListMessages mocks base method.
func (m *MockIMessageRepository) ListMessages(conversationID uuid.UUID) ([]domain.Message, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListMessages", conversationID)
	ret0, _ := ret[0].([]domain.Message)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListMessages indicates an expected call of ListMessages.
func (mr *MockIMessageRepositoryMockRecorder) ListMessages(conversationID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListMessages", reflect.TypeOf((*MockIMessageRepository)(nil).ListMessages), conversationID)
}

// StoreMessage mocks base method.
func (m *MockIMessageRepository) StoreMessage(message domain.Message) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "StoreMessage", message)
	ret0, _ := ret[0].(error)
	return ret0
}

// StoreMessage indicates an expected call of StoreMessage.
func (mr *MockIMessageRepositoryMockRecorder) StoreMessage(message any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StoreMessage", reflect.TypeOf((*MockIMessageRepository)(nil).StoreMessage), message)
}

// UpdateMessage mocks base method.
func (m *MockIMessageRepository) UpdateMessage(id uuid.UUID, mutate func(*domain.Message) bool) (domain.Message, bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateMessage", id, mutate)
	ret0, _ := ret[0].(domain.Message)
	ret1, _ := ret[1].(bool)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// UpdateMessage indicates an expected call of UpdateMessage.
func (mr *MockIMessageRepositoryMockRecorder) UpdateMessage(id, mutate any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateMessage", reflect.TypeOf((*MockIMessageRepository)(nil).UpdateMessage), id, mutate)
}
