// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	contract "chatgram/contract"
	domain "chatgram/domain"
	event "chatgram/domain/event"
	context "context"
	reflect "reflect"

	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockISupervisor is a mock of ISupervisor interface.
type MockISupervisor struct {
	ctrl     *gomock.Controller
	recorder *MockISupervisorMockRecorder
	isgomock struct{}
}

// MockISupervisorMockRecorder is the mock recorder for MockISupervisor.
type MockISupervisorMockRecorder struct {
	mock *MockISupervisor
}

// NewMockISupervisor creates a new mock instance.
func NewMockISupervisor(ctrl *gomock.Controller) *MockISupervisor {
	mock := &MockISupervisor{ctrl: ctrl}
	mock.recorder = &MockISupervisorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockISupervisor) EXPECT() *MockISupervisorMockRecorder {
	return m.recorder
}

// Add mocks base method.
func (m *MockISupervisor) Add(worker ...contract.Worker) contract.ISupervisor {
	m.ctrl.T.Helper()
	varargs := []any{}
	for _, a := range worker {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "Add", varargs...)
	ret0, _ := ret[0].(contract.ISupervisor)
	return ret0
}

// Add indicates an expected call of Add.
func (mr *MockISupervisorMockRecorder) Add(worker ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Add", reflect.TypeOf((*MockISupervisor)(nil).Add), worker...)
}

// Run mocks base method.
func (m *MockISupervisor) Run(ctx context.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Run", ctx)
}

// Run indicates an expected call of Run.
func (mr *MockISupervisorMockRecorder) Run(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Run", reflect.TypeOf((*MockISupervisor)(nil).Run), ctx)
}

// Start mocks base method.
func (m *MockISupervisor) Start(ctx context.Context, worker contract.Worker) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Start", ctx, worker)
}

// Start indicates an expected call of Start.
func (mr *MockISupervisorMockRecorder) Start(ctx, worker any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Start", reflect.TypeOf((*MockISupervisor)(nil).Start), ctx, worker)
}

// Stop mocks base method.
func (m *MockISupervisor) Stop() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Stop")
}

// Stop indicates an expected call of Stop.
func (mr *MockISupervisorMockRecorder) Stop() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Stop", reflect.TypeOf((*MockISupervisor)(nil).Stop))
}

// MockWorker is a mock of Worker interface.
type MockWorker struct {
	ctrl     *gomock.Controller
	recorder *MockWorkerMockRecorder
	isgomock struct{}
}

// MockWorkerMockRecorder is the mock recorder for MockWorker.
type MockWorkerMockRecorder struct {
	mock *MockWorker
}

// NewMockWorker creates a new mock instance.
func NewMockWorker(ctrl *gomock.Controller) *MockWorker {
	mock := &MockWorker{ctrl: ctrl}
	mock.recorder = &MockWorkerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockWorker) EXPECT() *MockWorkerMockRecorder {
	return m.recorder
}

// Run mocks base method.
func (m *MockWorker) Run(ctx context.Context) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Run", ctx)
	ret0, _ := ret[0].(error)
	return ret0
}

// Run indicates an expected call of Run.
func (mr *MockWorkerMockRecorder) Run(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Run", reflect.TypeOf((*MockWorker)(nil).Run), ctx)
}

// MockEventSink is a mock of EventSink interface.
type MockEventSink struct {
	ctrl     *gomock.Controller
	recorder *MockEventSinkMockRecorder
	isgomock struct{}
}

// MockEventSinkMockRecorder is the mock recorder for MockEventSink.
type MockEventSinkMockRecorder struct {
	mock *MockEventSink
}

// NewMockEventSink creates a new mock instance.
func NewMockEventSink(ctrl *gomock.Controller) *MockEventSink {
	mock := &MockEventSink{ctrl: ctrl}
	mock.recorder = &MockEventSinkMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockEventSink) EXPECT() *MockEventSinkMockRecorder {
	return m.recorder
}

// Consume mocks base method.
func (m *MockEventSink) Consume(ctx context.Context, e event.Event) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Consume", ctx, e)
	ret0, _ := ret[0].(error)
	return ret0
}

// Consume indicates an expected call of Consume.
func (mr *MockEventSinkMockRecorder) Consume(ctx, e any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Consume", reflect.TypeOf((*MockEventSink)(nil).Consume), ctx, e)
}

// MockIPresence is a mock of IPresence interface.
type MockIPresence struct {
	ctrl     *gomock.Controller
	recorder *MockIPresenceMockRecorder
	isgomock struct{}
}

// MockIPresenceMockRecorder is the mock recorder for MockIPresence.
type MockIPresenceMockRecorder struct {
	mock *MockIPresence
}

// NewMockIPresence creates a new mock instance.
func NewMockIPresence(ctrl *gomock.Controller) *MockIPresence {
	mock := &MockIPresence{ctrl: ctrl}
	mock.recorder = &MockIPresenceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIPresence) EXPECT() *MockIPresenceMockRecorder {
	return m.recorder
}

// IsOnline mocks base method.
func (m *MockIPresence) IsOnline(userID string) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsOnline", userID)
	ret0, _ := ret[0].(bool)
	return ret0
}

// IsOnline indicates an expected call of IsOnline.
func (mr *MockIPresenceMockRecorder) IsOnline(userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsOnline", reflect.TypeOf((*MockIPresence)(nil).IsOnline), userID)
}

// OnlineUsers mocks base method.
func (m *MockIPresence) OnlineUsers() []string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "OnlineUsers")
	ret0, _ := ret[0].([]string)
	return ret0
}

// OnlineUsers indicates an expected call of OnlineUsers.
func (mr *MockIPresenceMockRecorder) OnlineUsers() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnlineUsers", reflect.TypeOf((*MockIPresence)(nil).OnlineUsers))
}

// MockISubscriptionIndex is a mock of ISubscriptionIndex interface.
type MockISubscriptionIndex struct {
	ctrl     *gomock.Controller
	recorder *MockISubscriptionIndexMockRecorder
	isgomock struct{}
}

// MockISubscriptionIndexMockRecorder is the mock recorder for MockISubscriptionIndex.
type MockISubscriptionIndexMockRecorder struct {
	mock *MockISubscriptionIndex
}

// NewMockISubscriptionIndex creates a new mock instance.
func NewMockISubscriptionIndex(ctrl *gomock.Controller) *MockISubscriptionIndex {
	mock := &MockISubscriptionIndex{ctrl: ctrl}
	mock.recorder = &MockISubscriptionIndexMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockISubscriptionIndex) EXPECT() *MockISubscriptionIndexMockRecorder {
	return m.recorder
}

// AllSinks mocks base method.
func (m *MockISubscriptionIndex) AllSinks() []contract.EventSink {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AllSinks")
	ret0, _ := ret[0].([]contract.EventSink)
	return ret0
}

// AllSinks indicates an expected call of AllSinks.
func (mr *MockISubscriptionIndexMockRecorder) AllSinks() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AllSinks", reflect.TypeOf((*MockISubscriptionIndex)(nil).AllSinks))
}

// SinksForRoom mocks base method.
func (m *MockISubscriptionIndex) SinksForRoom(conversationID uuid.UUID) []contract.EventSink {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SinksForRoom", conversationID)
	ret0, _ := ret[0].([]contract.EventSink)
	return ret0
}

// SinksForRoom indicates an expected call of SinksForRoom.
func (mr *MockISubscriptionIndexMockRecorder) SinksForRoom(conversationID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SinksForRoom", reflect.TypeOf((*MockISubscriptionIndex)(nil).SinksForRoom), conversationID)
}

// SinksForUser mocks base method.
func (m *MockISubscriptionIndex) SinksForUser(userID string) []contract.EventSink {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SinksForUser", userID)
	ret0, _ := ret[0].([]contract.EventSink)
	return ret0
}

// SinksForUser indicates an expected call of SinksForUser.
func (mr *MockISubscriptionIndexMockRecorder) SinksForUser(userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SinksForUser", reflect.TypeOf((*MockISubscriptionIndex)(nil).SinksForUser), userID)
}

// UserInRoom mocks base method.
func (m *MockISubscriptionIndex) UserInRoom(conversationID uuid.UUID, userID string) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UserInRoom", conversationID, userID)
	ret0, _ := ret[0].(bool)
	return ret0
}

// UserInRoom indicates an expected call of UserInRoom.
func (mr *MockISubscriptionIndexMockRecorder) UserInRoom(conversationID, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UserInRoom", reflect.TypeOf((*MockISubscriptionIndex)(nil).UserInRoom), conversationID, userID)
}

// MockIDispatcher is a mock of IDispatcher interface.
type MockIDispatcher struct {
	ctrl     *gomock.Controller
	recorder *MockIDispatcherMockRecorder
	isgomock struct{}
}

// MockIDispatcherMockRecorder is the mock recorder for MockIDispatcher.
type MockIDispatcherMockRecorder struct {
	mock *MockIDispatcher
}

// NewMockIDispatcher creates a new mock instance.
func NewMockIDispatcher(ctrl *gomock.Controller) *MockIDispatcher {
	mock := &MockIDispatcher{ctrl: ctrl}
	mock.recorder = &MockIDispatcherMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIDispatcher) EXPECT() *MockIDispatcherMockRecorder {
	return m.recorder
}

// MessageDeleted mocks base method.
func (m *MockIDispatcher) MessageDeleted(ctx context.Context, e event.MessageDeleted) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "MessageDeleted", ctx, e)
}

// MessageDeleted indicates an expected call of MessageDeleted.
func (mr *MockIDispatcherMockRecorder) MessageDeleted(ctx, e any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MessageDeleted", reflect.TypeOf((*MockIDispatcher)(nil).MessageDeleted), ctx, e)
}

// MessageEdited mocks base method.
func (m *MockIDispatcher) MessageEdited(ctx context.Context, msg domain.Message) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "MessageEdited", ctx, msg)
}

// MessageEdited indicates an expected call of MessageEdited.
func (mr *MockIDispatcherMockRecorder) MessageEdited(ctx, msg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MessageEdited", reflect.TypeOf((*MockIDispatcher)(nil).MessageEdited), ctx, msg)
}

// MessageSent mocks base method.
func (m *MockIDispatcher) MessageSent(ctx context.Context, conv domain.Conversation, msg domain.Message) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "MessageSent", ctx, conv, msg)
}

// MessageSent indicates an expected call of MessageSent.
func (mr *MockIDispatcherMockRecorder) MessageSent(ctx, conv, msg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MessageSent", reflect.TypeOf((*MockIDispatcher)(nil).MessageSent), ctx, conv, msg)
}

// NotifyUser mocks base method.
func (m *MockIDispatcher) NotifyUser(ctx context.Context, e event.Notification) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "NotifyUser", ctx, e)
}

// NotifyUser indicates an expected call of NotifyUser.
func (mr *MockIDispatcherMockRecorder) NotifyUser(ctx, e any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "NotifyUser", reflect.TypeOf((*MockIDispatcher)(nil).NotifyUser), ctx, e)
}

// StatusUpdated mocks base method.
func (m *MockIDispatcher) StatusUpdated(ctx context.Context, e event.MessageStatusUpdated) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "StatusUpdated", ctx, e)
}

// StatusUpdated indicates an expected call of StatusUpdated.
func (mr *MockIDispatcherMockRecorder) StatusUpdated(ctx, e any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StatusUpdated", reflect.TypeOf((*MockIDispatcher)(nil).StatusUpdated), ctx, e)
}

// UserOffline mocks base method.
func (m *MockIDispatcher) UserOffline(ctx context.Context, userID string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "UserOffline", ctx, userID)
}

// UserOffline indicates an expected call of UserOffline.
func (mr *MockIDispatcherMockRecorder) UserOffline(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UserOffline", reflect.TypeOf((*MockIDispatcher)(nil).UserOffline), ctx, userID)
}

// UserOnline mocks base method.
func (m *MockIDispatcher) UserOnline(ctx context.Context, userID string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "UserOnline", ctx, userID)
}

// UserOnline indicates an expected call of UserOnline.
func (mr *MockIDispatcherMockRecorder) UserOnline(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UserOnline", reflect.TypeOf((*MockIDispatcher)(nil).UserOnline), ctx, userID)
}
