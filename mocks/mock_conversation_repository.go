// Code generated by MockGen. DO NOT EDIT.
// Source: conversation.go
//
// Generated by this command:
//
//	mockgen -source=conversation.go -destination=../mocks/mock_conversation_repository.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	domain "chatgram/domain"
	reflect "reflect"
	time "time"

	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockIConversationRepository is a mock of IConversationRepository interface.
type MockIConversationRepository struct {
	ctrl     *gomock.Controller
	recorder *MockIConversationRepositoryMockRecorder
	isgomock struct{}
}

// MockIConversationRepositoryMockRecorder is the mock recorder for MockIConversationRepository.
type MockIConversationRepositoryMockRecorder struct {
	mock *MockIConversationRepository
}

// NewMockIConversationRepository creates a new mock instance.
func NewMockIConversationRepository(ctrl *gomock.Controller) *MockIConversationRepository {
	mock := &MockIConversationRepository{ctrl: ctrl}
	mock.recorder = &MockIConversationRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIConversationRepository) EXPECT() *MockIConversationRepositoryMockRecorder {
	return m.recorder
}

// CreateConversation mocks base method.
func (m *MockIConversationRepository) CreateConversation(participants []string, kind domain.ConversationKind) (domain.Conversation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateConversation", participants, kind)
	ret0, _ := ret[0].(domain.Conversation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateConversation indicates an expected call of CreateConversation.
func (mr *MockIConversationRepositoryMockRecorder) CreateConversation(participants, kind any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateConversation", reflect.TypeOf((*MockIConversationRepository)(nil).CreateConversation), participants, kind)
}

// DeleteConversation mocks base method.
func (m *MockIConversationRepository) DeleteConversation(id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteConversation", id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteConversation indicates an expected call of DeleteConversation.
func (mr *MockIConversationRepositoryMockRecorder) DeleteConversation(id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteConversation", reflect.TypeOf((*MockIConversationRepository)(nil).DeleteConversation), id)
}

// GetConversation mocks base method.
func (m *MockIConversationRepository) GetConversation(id uuid.UUID) (domain.Conversation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetConversation", id)
	ret0, _ := ret[0].(domain.Conversation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetConversation indicates an expected call of GetConversation.
func (mr *MockIConversationRepositoryMockRecorder) GetConversation(id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetConversation", reflect.TypeOf((*MockIConversationRepository)(nil).GetConversation), id)
}

// GetOrCreateDirect mocks base method.
func (m *MockIConversationRepository) GetOrCreateDirect(userA, userB string) (domain.Conversation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetOrCreateDirect", userA, userB)
	ret0, _ := ret[0].(domain.Conversation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetOrCreateDirect indicates an expected call of GetOrCreateDirect.
func (mr *MockIConversationRepositoryMockRecorder) GetOrCreateDirect(userA, userB any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetOrCreateDirect", reflect.TypeOf((*MockIConversationRepository)(nil).GetOrCreateDirect), userA, userB)
}

// ListByParticipant mocks base method.
func (m *MockIConversationRepository) ListByParticipant(userID string) ([]domain.Conversation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByParticipant", userID)
	ret0, _ := ret[0].([]domain.Conversation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListByParticipant indicates an expected call of ListByParticipant.
func (mr *MockIConversationRepositoryMockRecorder) ListByParticipant(userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByParticipant", reflect.TypeOf((*MockIConversationRepository)(nil).ListByParticipant), userID)
}

// Touch mocks base method.
func (m *MockIConversationRepository) Touch(id uuid.UUID, at time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Touch", id, at)
	ret0, _ := ret[0].(error)
	return ret0
}

// Touch indicates an expected call of Touch.
func (mr *MockIConversationRepositoryMockRecorder) Touch(id, at any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Touch", reflect.TypeOf((*MockIConversationRepository)(nil).Touch), id, at)
}
