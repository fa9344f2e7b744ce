// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: proto/chat.proto

package chat

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ClientEvent struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Types that are valid to be assigned to Event:
	//
	//	*ClientEvent_Register
	//	*ClientEvent_Logout
	//	*ClientEvent_JoinConversation
	//	*ClientEvent_LeaveConversation
	//	*ClientEvent_GetOnlineUsers
	Event         isClientEvent_Event `protobuf_oneof:"event"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClientEvent) Reset() {
	*x = ClientEvent{}
	mi := &file_proto_chat_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClientEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClientEvent) ProtoMessage() {}

func (x *ClientEvent) ProtoReflect() protoreflect.Message {
	mi := &file_proto_chat_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClientEvent.ProtoReflect.Descriptor instead.
func (*ClientEvent) Descriptor() ([]byte, []int) {
	return file_proto_chat_proto_rawDescGZIP(), []int{0}
}

func (x *ClientEvent) GetEvent() isClientEvent_Event {
	if x != nil {
		return x.Event
	}
	return nil
}

func (x *ClientEvent) GetRegister() *Register {
	if x != nil {
		if x, ok := x.Event.(*ClientEvent_Register); ok {
			return x.Register
		}
	}
	return nil
}

func (x *ClientEvent) GetLogout() *Logout {
	if x != nil {
		if x, ok := x.Event.(*ClientEvent_Logout); ok {
			return x.Logout
		}
	}
	return nil
}

func (x *ClientEvent) GetJoinConversation() *JoinConversation {
	if x != nil {
		if x, ok := x.Event.(*ClientEvent_JoinConversation); ok {
			return x.JoinConversation
		}
	}
	return nil
}

func (x *ClientEvent) GetLeaveConversation() *LeaveConversation {
	if x != nil {
		if x, ok := x.Event.(*ClientEvent_LeaveConversation); ok {
			return x.LeaveConversation
		}
	}
	return nil
}

func (x *ClientEvent) GetGetOnlineUsers() *GetOnlineUsers {
	if x != nil {
		if x, ok := x.Event.(*ClientEvent_GetOnlineUsers); ok {
			return x.GetOnlineUsers
		}
	}
	return nil
}

type isClientEvent_Event interface {
	isClientEvent_Event()
}

type ClientEvent_Register struct {
	Register *Register `protobuf:"bytes,1,opt,name=register,proto3,oneof"`
}

type ClientEvent_Logout struct {
	Logout *Logout `protobuf:"bytes,2,opt,name=logout,proto3,oneof"`
}

type ClientEvent_JoinConversation struct {
	JoinConversation *JoinConversation `protobuf:"bytes,3,opt,name=join_conversation,json=joinConversation,proto3,oneof"`
}

type ClientEvent_LeaveConversation struct {
	LeaveConversation *LeaveConversation `protobuf:"bytes,4,opt,name=leave_conversation,json=leaveConversation,proto3,oneof"`
}

type ClientEvent_GetOnlineUsers struct {
	GetOnlineUsers *GetOnlineUsers `protobuf:"bytes,5,opt,name=get_online_users,json=getOnlineUsers,proto3,oneof"`
}

func (*ClientEvent_Register) isClientEvent_Event() {}

func (*ClientEvent_Logout) isClientEvent_Event() {}

func (*ClientEvent_JoinConversation) isClientEvent_Event() {}

func (*ClientEvent_LeaveConversation) isClientEvent_Event() {}

func (*ClientEvent_GetOnlineUsers) isClientEvent_Event() {}

type Register struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Register) Reset() {
	*x = Register{}
	mi := &file_proto_chat_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Register) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Register) ProtoMessage() {}

func (x *Register) ProtoReflect() protoreflect.Message {
	mi := &file_proto_chat_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Register.ProtoReflect.Descriptor instead.
func (*Register) Descriptor() ([]byte, []int) {
	return file_proto_chat_proto_rawDescGZIP(), []int{1}
}

type Logout struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Logout) Reset() {
	*x = Logout{}
	mi := &file_proto_chat_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Logout) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Logout) ProtoMessage() {}

func (x *Logout) ProtoReflect() protoreflect.Message {
	mi := &file_proto_chat_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Logout.ProtoReflect.Descriptor instead.
func (*Logout) Descriptor() ([]byte, []int) {
	return file_proto_chat_proto_rawDescGZIP(), []int{2}
}

type JoinConversation struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ConversationId string                 `protobuf:"bytes,1,opt,name=conversation_id,json=conversationId,proto3" json:"conversation_id,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *JoinConversation) Reset() {
	*x = JoinConversation{}
	mi := &file_proto_chat_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JoinConversation) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JoinConversation) ProtoMessage() {}

func (x *JoinConversation) ProtoReflect() protoreflect.Message {
	mi := &file_proto_chat_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JoinConversation.ProtoReflect.Descriptor instead.
func (*JoinConversation) Descriptor() ([]byte, []int) {
	return file_proto_chat_proto_rawDescGZIP(), []int{3}
}

func (x *JoinConversation) GetConversationId() string {
	if x != nil {
		return x.ConversationId
	}
	return ""
}

type LeaveConversation struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ConversationId string                 `protobuf:"bytes,1,opt,name=conversation_id,json=conversationId,proto3" json:"conversation_id,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *LeaveConversation) Reset() {
	*x = LeaveConversation{}
	mi := &file_proto_chat_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LeaveConversation) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LeaveConversation) ProtoMessage() {}

func (x *LeaveConversation) ProtoReflect() protoreflect.Message {
	mi := &file_proto_chat_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LeaveConversation.ProtoReflect.Descriptor instead.
func (*LeaveConversation) Descriptor() ([]byte, []int) {
	return file_proto_chat_proto_rawDescGZIP(), []int{4}
}

func (x *LeaveConversation) GetConversationId() string {
	if x != nil {
		return x.ConversationId
	}
	return ""
}

type GetOnlineUsers struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetOnlineUsers) Reset() {
	*x = GetOnlineUsers{}
	mi := &file_proto_chat_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetOnlineUsers) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetOnlineUsers) ProtoMessage() {}

func (x *GetOnlineUsers) ProtoReflect() protoreflect.Message {
	mi := &file_proto_chat_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetOnlineUsers.ProtoReflect.Descriptor instead.
func (*GetOnlineUsers) Descriptor() ([]byte, []int) {
	return file_proto_chat_proto_rawDescGZIP(), []int{5}
}

type ServerEvent struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Types that are valid to be assigned to Event:
	//
	//	*ServerEvent_UserOnline
	//	*ServerEvent_UserOffline
	//	*ServerEvent_NewMessage
	//	*ServerEvent_MessageStatusUpdated
	//	*ServerEvent_MessageUpdated
	//	*ServerEvent_MessageDeleted
	//	*ServerEvent_NewMessageNotification
	//	*ServerEvent_Notification
	//	*ServerEvent_OnlineUsers
	Event         isServerEvent_Event `protobuf_oneof:"event"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ServerEvent) Reset() {
	*x = ServerEvent{}
	mi := &file_proto_chat_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ServerEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ServerEvent) ProtoMessage() {}

func (x *ServerEvent) ProtoReflect() protoreflect.Message {
	mi := &file_proto_chat_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ServerEvent.ProtoReflect.Descriptor instead.
func (*ServerEvent) Descriptor() ([]byte, []int) {
	return file_proto_chat_proto_rawDescGZIP(), []int{6}
}

func (x *ServerEvent) GetEvent() isServerEvent_Event {
	if x != nil {
		return x.Event
	}
	return nil
}

func (x *ServerEvent) GetUserOnline() *UserOnline {
	if x != nil {
		if x, ok := x.Event.(*ServerEvent_UserOnline); ok {
			return x.UserOnline
		}
	}
	return nil
}

func (x *ServerEvent) GetUserOffline() *UserOffline {
	if x != nil {
		if x, ok := x.Event.(*ServerEvent_UserOffline); ok {
			return x.UserOffline
		}
	}
	return nil
}

func (x *ServerEvent) GetNewMessage() *MessageEvent {
	if x != nil {
		if x, ok := x.Event.(*ServerEvent_NewMessage); ok {
			return x.NewMessage
		}
	}
	return nil
}

func (x *ServerEvent) GetMessageStatusUpdated() *MessageStatusUpdated {
	if x != nil {
		if x, ok := x.Event.(*ServerEvent_MessageStatusUpdated); ok {
			return x.MessageStatusUpdated
		}
	}
	return nil
}

func (x *ServerEvent) GetMessageUpdated() *MessageEvent {
	if x != nil {
		if x, ok := x.Event.(*ServerEvent_MessageUpdated); ok {
			return x.MessageUpdated
		}
	}
	return nil
}

func (x *ServerEvent) GetMessageDeleted() *MessageDeleted {
	if x != nil {
		if x, ok := x.Event.(*ServerEvent_MessageDeleted); ok {
			return x.MessageDeleted
		}
	}
	return nil
}

func (x *ServerEvent) GetNewMessageNotification() *NewMessageNotification {
	if x != nil {
		if x, ok := x.Event.(*ServerEvent_NewMessageNotification); ok {
			return x.NewMessageNotification
		}
	}
	return nil
}

func (x *ServerEvent) GetNotification() *Notification {
	if x != nil {
		if x, ok := x.Event.(*ServerEvent_Notification); ok {
			return x.Notification
		}
	}
	return nil
}

func (x *ServerEvent) GetOnlineUsers() *OnlineUsers {
	if x != nil {
		if x, ok := x.Event.(*ServerEvent_OnlineUsers); ok {
			return x.OnlineUsers
		}
	}
	return nil
}

type isServerEvent_Event interface {
	isServerEvent_Event()
}

type ServerEvent_UserOnline struct {
	UserOnline *UserOnline `protobuf:"bytes,1,opt,name=user_online,json=userOnline,proto3,oneof"`
}

type ServerEvent_UserOffline struct {
	UserOffline *UserOffline `protobuf:"bytes,2,opt,name=user_offline,json=userOffline,proto3,oneof"`
}

type ServerEvent_NewMessage struct {
	NewMessage *MessageEvent `protobuf:"bytes,3,opt,name=new_message,json=newMessage,proto3,oneof"`
}

type ServerEvent_MessageStatusUpdated struct {
	MessageStatusUpdated *MessageStatusUpdated `protobuf:"bytes,4,opt,name=message_status_updated,json=messageStatusUpdated,proto3,oneof"`
}

type ServerEvent_MessageUpdated struct {
	MessageUpdated *MessageEvent `protobuf:"bytes,5,opt,name=message_updated,json=messageUpdated,proto3,oneof"`
}

type ServerEvent_MessageDeleted struct {
	MessageDeleted *MessageDeleted `protobuf:"bytes,6,opt,name=message_deleted,json=messageDeleted,proto3,oneof"`
}

type ServerEvent_NewMessageNotification struct {
	NewMessageNotification *NewMessageNotification `protobuf:"bytes,7,opt,name=new_message_notification,json=newMessageNotification,proto3,oneof"`
}

type ServerEvent_Notification struct {
	Notification *Notification `protobuf:"bytes,8,opt,name=notification,proto3,oneof"`
}

type ServerEvent_OnlineUsers struct {
	OnlineUsers *OnlineUsers `protobuf:"bytes,9,opt,name=online_users,json=onlineUsers,proto3,oneof"`
}

func (*ServerEvent_UserOnline) isServerEvent_Event() {}

func (*ServerEvent_UserOffline) isServerEvent_Event() {}

func (*ServerEvent_NewMessage) isServerEvent_Event() {}

func (*ServerEvent_MessageStatusUpdated) isServerEvent_Event() {}

func (*ServerEvent_MessageUpdated) isServerEvent_Event() {}

func (*ServerEvent_MessageDeleted) isServerEvent_Event() {}

func (*ServerEvent_NewMessageNotification) isServerEvent_Event() {}

func (*ServerEvent_Notification) isServerEvent_Event() {}

func (*ServerEvent_OnlineUsers) isServerEvent_Event() {}

type UserOnline struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UserOnline) Reset() {
	*x = UserOnline{}
	mi := &file_proto_chat_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UserOnline) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UserOnline) ProtoMessage() {}

func (x *UserOnline) ProtoReflect() protoreflect.Message {
	mi := &file_proto_chat_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UserOnline.ProtoReflect.Descriptor instead.
func (*UserOnline) Descriptor() ([]byte, []int) {
	return file_proto_chat_proto_rawDescGZIP(), []int{7}
}

func (x *UserOnline) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type UserOffline struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UserOffline) Reset() {
	*x = UserOffline{}
	mi := &file_proto_chat_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UserOffline) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UserOffline) ProtoMessage() {}

func (x *UserOffline) ProtoReflect() protoreflect.Message {
	mi := &file_proto_chat_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UserOffline.ProtoReflect.Descriptor instead.
func (*UserOffline) Descriptor() ([]byte, []int) {
	return file_proto_chat_proto_rawDescGZIP(), []int{8}
}

func (x *UserOffline) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type MessageEvent struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	MessageId      string                 `protobuf:"bytes,1,opt,name=message_id,json=messageId,proto3" json:"message_id,omitempty"`
	ConversationId string                 `protobuf:"bytes,2,opt,name=conversation_id,json=conversationId,proto3" json:"conversation_id,omitempty"`
	SenderId       string                 `protobuf:"bytes,3,opt,name=sender_id,json=senderId,proto3" json:"sender_id,omitempty"`
	Text           string                 `protobuf:"bytes,4,opt,name=text,proto3" json:"text,omitempty"`
	Status         string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`
	DeliveredTo    []string               `protobuf:"bytes,6,rep,name=delivered_to,json=deliveredTo,proto3" json:"delivered_to,omitempty"`
	SeenBy         []string               `protobuf:"bytes,7,rep,name=seen_by,json=seenBy,proto3" json:"seen_by,omitempty"`
	CreatedAt      *timestamppb.Timestamp `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	EditedAt       *timestamppb.Timestamp `protobuf:"bytes,9,opt,name=edited_at,json=editedAt,proto3" json:"edited_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *MessageEvent) Reset() {
	*x = MessageEvent{}
	mi := &file_proto_chat_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MessageEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MessageEvent) ProtoMessage() {}

func (x *MessageEvent) ProtoReflect() protoreflect.Message {
	mi := &file_proto_chat_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MessageEvent.ProtoReflect.Descriptor instead.
func (*MessageEvent) Descriptor() ([]byte, []int) {
	return file_proto_chat_proto_rawDescGZIP(), []int{9}
}

func (x *MessageEvent) GetMessageId() string {
	if x != nil {
		return x.MessageId
	}
	return ""
}

func (x *MessageEvent) GetConversationId() string {
	if x != nil {
		return x.ConversationId
	}
	return ""
}

func (x *MessageEvent) GetSenderId() string {
	if x != nil {
		return x.SenderId
	}
	return ""
}

func (x *MessageEvent) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *MessageEvent) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *MessageEvent) GetDeliveredTo() []string {
	if x != nil {
		return x.DeliveredTo
	}
	return nil
}

func (x *MessageEvent) GetSeenBy() []string {
	if x != nil {
		return x.SeenBy
	}
	return nil
}

func (x *MessageEvent) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *MessageEvent) GetEditedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.EditedAt
	}
	return nil
}

type MessageStatusUpdated struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	MessageId      string                 `protobuf:"bytes,1,opt,name=message_id,json=messageId,proto3" json:"message_id,omitempty"`
	ConversationId string                 `protobuf:"bytes,2,opt,name=conversation_id,json=conversationId,proto3" json:"conversation_id,omitempty"`
	Status         string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	UserId         string                 `protobuf:"bytes,4,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *MessageStatusUpdated) Reset() {
	*x = MessageStatusUpdated{}
	mi := &file_proto_chat_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MessageStatusUpdated) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MessageStatusUpdated) ProtoMessage() {}

func (x *MessageStatusUpdated) ProtoReflect() protoreflect.Message {
	mi := &file_proto_chat_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MessageStatusUpdated.ProtoReflect.Descriptor instead.
func (*MessageStatusUpdated) Descriptor() ([]byte, []int) {
	return file_proto_chat_proto_rawDescGZIP(), []int{10}
}

func (x *MessageStatusUpdated) GetMessageId() string {
	if x != nil {
		return x.MessageId
	}
	return ""
}

func (x *MessageStatusUpdated) GetConversationId() string {
	if x != nil {
		return x.ConversationId
	}
	return ""
}

func (x *MessageStatusUpdated) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *MessageStatusUpdated) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type MessageDeleted struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	MessageId      string                 `protobuf:"bytes,1,opt,name=message_id,json=messageId,proto3" json:"message_id,omitempty"`
	ConversationId string                 `protobuf:"bytes,2,opt,name=conversation_id,json=conversationId,proto3" json:"conversation_id,omitempty"`
	SenderId       string                 `protobuf:"bytes,3,opt,name=sender_id,json=senderId,proto3" json:"sender_id,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *MessageDeleted) Reset() {
	*x = MessageDeleted{}
	mi := &file_proto_chat_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MessageDeleted) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MessageDeleted) ProtoMessage() {}

func (x *MessageDeleted) ProtoReflect() protoreflect.Message {
	mi := &file_proto_chat_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MessageDeleted.ProtoReflect.Descriptor instead.
func (*MessageDeleted) Descriptor() ([]byte, []int) {
	return file_proto_chat_proto_rawDescGZIP(), []int{11}
}

func (x *MessageDeleted) GetMessageId() string {
	if x != nil {
		return x.MessageId
	}
	return ""
}

func (x *MessageDeleted) GetConversationId() string {
	if x != nil {
		return x.ConversationId
	}
	return ""
}

func (x *MessageDeleted) GetSenderId() string {
	if x != nil {
		return x.SenderId
	}
	return ""
}

// NewMessageNotification deliberately carries no message body.
type NewMessageNotification struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ConversationId string                 `protobuf:"bytes,1,opt,name=conversation_id,json=conversationId,proto3" json:"conversation_id,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *NewMessageNotification) Reset() {
	*x = NewMessageNotification{}
	mi := &file_proto_chat_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *NewMessageNotification) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*NewMessageNotification) ProtoMessage() {}

func (x *NewMessageNotification) ProtoReflect() protoreflect.Message {
	mi := &file_proto_chat_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use NewMessageNotification.ProtoReflect.Descriptor instead.
func (*NewMessageNotification) Descriptor() ([]byte, []int) {
	return file_proto_chat_proto_rawDescGZIP(), []int{12}
}

func (x *NewMessageNotification) GetConversationId() string {
	if x != nil {
		return x.ConversationId
	}
	return ""
}

type Notification struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Kind          string                 `protobuf:"bytes,1,opt,name=kind,proto3" json:"kind,omitempty"`
	SenderId      string                 `protobuf:"bytes,2,opt,name=sender_id,json=senderId,proto3" json:"sender_id,omitempty"`
	Body          string                 `protobuf:"bytes,3,opt,name=body,proto3" json:"body,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Notification) Reset() {
	*x = Notification{}
	mi := &file_proto_chat_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Notification) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Notification) ProtoMessage() {}

func (x *Notification) ProtoReflect() protoreflect.Message {
	mi := &file_proto_chat_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Notification.ProtoReflect.Descriptor instead.
func (*Notification) Descriptor() ([]byte, []int) {
	return file_proto_chat_proto_rawDescGZIP(), []int{13}
}

func (x *Notification) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *Notification) GetSenderId() string {
	if x != nil {
		return x.SenderId
	}
	return ""
}

func (x *Notification) GetBody() string {
	if x != nil {
		return x.Body
	}
	return ""
}

type OnlineUsers struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserIds       []string               `protobuf:"bytes,1,rep,name=user_ids,json=userIds,proto3" json:"user_ids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *OnlineUsers) Reset() {
	*x = OnlineUsers{}
	mi := &file_proto_chat_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OnlineUsers) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OnlineUsers) ProtoMessage() {}

func (x *OnlineUsers) ProtoReflect() protoreflect.Message {
	mi := &file_proto_chat_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OnlineUsers.ProtoReflect.Descriptor instead.
func (*OnlineUsers) Descriptor() ([]byte, []int) {
	return file_proto_chat_proto_rawDescGZIP(), []int{14}
}

func (x *OnlineUsers) GetUserIds() []string {
	if x != nil {
		return x.UserIds
	}
	return nil
}

type SendMessageRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ConversationId string                 `protobuf:"bytes,1,opt,name=conversation_id,json=conversationId,proto3" json:"conversation_id,omitempty"`
	Text           string                 `protobuf:"bytes,2,opt,name=text,proto3" json:"text,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *SendMessageRequest) Reset() {
	*x = SendMessageRequest{}
	mi := &file_proto_chat_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SendMessageRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SendMessageRequest) ProtoMessage() {}

func (x *SendMessageRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_chat_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SendMessageRequest.ProtoReflect.Descriptor instead.
func (*SendMessageRequest) Descriptor() ([]byte, []int) {
	return file_proto_chat_proto_rawDescGZIP(), []int{15}
}

func (x *SendMessageRequest) GetConversationId() string {
	if x != nil {
		return x.ConversationId
	}
	return ""
}

func (x *SendMessageRequest) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

type MessageResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Message       *MessageEvent          `protobuf:"bytes,1,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MessageResponse) Reset() {
	*x = MessageResponse{}
	mi := &file_proto_chat_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MessageResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MessageResponse) ProtoMessage() {}

func (x *MessageResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_chat_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MessageResponse.ProtoReflect.Descriptor instead.
func (*MessageResponse) Descriptor() ([]byte, []int) {
	return file_proto_chat_proto_rawDescGZIP(), []int{16}
}

func (x *MessageResponse) GetMessage() *MessageEvent {
	if x != nil {
		return x.Message
	}
	return nil
}

type EditMessageRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MessageId     string                 `protobuf:"bytes,1,opt,name=message_id,json=messageId,proto3" json:"message_id,omitempty"`
	Text          string                 `protobuf:"bytes,2,opt,name=text,proto3" json:"text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EditMessageRequest) Reset() {
	*x = EditMessageRequest{}
	mi := &file_proto_chat_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EditMessageRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EditMessageRequest) ProtoMessage() {}

func (x *EditMessageRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_chat_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EditMessageRequest.ProtoReflect.Descriptor instead.
func (*EditMessageRequest) Descriptor() ([]byte, []int) {
	return file_proto_chat_proto_rawDescGZIP(), []int{17}
}

func (x *EditMessageRequest) GetMessageId() string {
	if x != nil {
		return x.MessageId
	}
	return ""
}

func (x *EditMessageRequest) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

type DeleteMessageRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MessageId     string                 `protobuf:"bytes,1,opt,name=message_id,json=messageId,proto3" json:"message_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteMessageRequest) Reset() {
	*x = DeleteMessageRequest{}
	mi := &file_proto_chat_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteMessageRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteMessageRequest) ProtoMessage() {}

func (x *DeleteMessageRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_chat_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteMessageRequest.ProtoReflect.Descriptor instead.
func (*DeleteMessageRequest) Descriptor() ([]byte, []int) {
	return file_proto_chat_proto_rawDescGZIP(), []int{18}
}

func (x *DeleteMessageRequest) GetMessageId() string {
	if x != nil {
		return x.MessageId
	}
	return ""
}

type DeleteMessageResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Success       bool                   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteMessageResponse) Reset() {
	*x = DeleteMessageResponse{}
	mi := &file_proto_chat_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteMessageResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteMessageResponse) ProtoMessage() {}

func (x *DeleteMessageResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_chat_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteMessageResponse.ProtoReflect.Descriptor instead.
func (*DeleteMessageResponse) Descriptor() ([]byte, []int) {
	return file_proto_chat_proto_rawDescGZIP(), []int{19}
}

func (x *DeleteMessageResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

type GetMessagesRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ConversationId string                 `protobuf:"bytes,1,opt,name=conversation_id,json=conversationId,proto3" json:"conversation_id,omitempty"`
	Page           int32                  `protobuf:"varint,2,opt,name=page,proto3" json:"page,omitempty"`
	Limit          int32                  `protobuf:"varint,3,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *GetMessagesRequest) Reset() {
	*x = GetMessagesRequest{}
	mi := &file_proto_chat_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetMessagesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetMessagesRequest) ProtoMessage() {}

func (x *GetMessagesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_chat_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetMessagesRequest.ProtoReflect.Descriptor instead.
func (*GetMessagesRequest) Descriptor() ([]byte, []int) {
	return file_proto_chat_proto_rawDescGZIP(), []int{20}
}

func (x *GetMessagesRequest) GetConversationId() string {
	if x != nil {
		return x.ConversationId
	}
	return ""
}

func (x *GetMessagesRequest) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *GetMessagesRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type GetMessagesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Messages      []*MessageEvent        `protobuf:"bytes,1,rep,name=messages,proto3" json:"messages,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetMessagesResponse) Reset() {
	*x = GetMessagesResponse{}
	mi := &file_proto_chat_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetMessagesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetMessagesResponse) ProtoMessage() {}

func (x *GetMessagesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_chat_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetMessagesResponse.ProtoReflect.Descriptor instead.
func (*GetMessagesResponse) Descriptor() ([]byte, []int) {
	return file_proto_chat_proto_rawDescGZIP(), []int{21}
}

func (x *GetMessagesResponse) GetMessages() []*MessageEvent {
	if x != nil {
		return x.Messages
	}
	return nil
}

type UpdateMessageStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MessageId     string                 `protobuf:"bytes,1,opt,name=message_id,json=messageId,proto3" json:"message_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateMessageStatusRequest) Reset() {
	*x = UpdateMessageStatusRequest{}
	mi := &file_proto_chat_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateMessageStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateMessageStatusRequest) ProtoMessage() {}

func (x *UpdateMessageStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_chat_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateMessageStatusRequest.ProtoReflect.Descriptor instead.
func (*UpdateMessageStatusRequest) Descriptor() ([]byte, []int) {
	return file_proto_chat_proto_rawDescGZIP(), []int{22}
}

func (x *UpdateMessageStatusRequest) GetMessageId() string {
	if x != nil {
		return x.MessageId
	}
	return ""
}

func (x *UpdateMessageStatusRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type GetConversationsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetConversationsRequest) Reset() {
	*x = GetConversationsRequest{}
	mi := &file_proto_chat_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetConversationsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetConversationsRequest) ProtoMessage() {}

func (x *GetConversationsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_chat_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetConversationsRequest.ProtoReflect.Descriptor instead.
func (*GetConversationsRequest) Descriptor() ([]byte, []int) {
	return file_proto_chat_proto_rawDescGZIP(), []int{23}
}

type ConversationSummary struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	ConversationId     string                 `protobuf:"bytes,1,opt,name=conversation_id,json=conversationId,proto3" json:"conversation_id,omitempty"`
	Participants       []string               `protobuf:"bytes,2,rep,name=participants,proto3" json:"participants,omitempty"`
	Kind               string                 `protobuf:"bytes,3,opt,name=kind,proto3" json:"kind,omitempty"`
	LastMessage        *MessageEvent          `protobuf:"bytes,4,opt,name=last_message,json=lastMessage,proto3" json:"last_message,omitempty"`
	UnreadCount        int32                  `protobuf:"varint,5,opt,name=unread_count,json=unreadCount,proto3" json:"unread_count,omitempty"`
	OnlineParticipants []string               `protobuf:"bytes,6,rep,name=online_participants,json=onlineParticipants,proto3" json:"online_participants,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *ConversationSummary) Reset() {
	*x = ConversationSummary{}
	mi := &file_proto_chat_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConversationSummary) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConversationSummary) ProtoMessage() {}

func (x *ConversationSummary) ProtoReflect() protoreflect.Message {
	mi := &file_proto_chat_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConversationSummary.ProtoReflect.Descriptor instead.
func (*ConversationSummary) Descriptor() ([]byte, []int) {
	return file_proto_chat_proto_rawDescGZIP(), []int{24}
}

func (x *ConversationSummary) GetConversationId() string {
	if x != nil {
		return x.ConversationId
	}
	return ""
}

func (x *ConversationSummary) GetParticipants() []string {
	if x != nil {
		return x.Participants
	}
	return nil
}

func (x *ConversationSummary) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *ConversationSummary) GetLastMessage() *MessageEvent {
	if x != nil {
		return x.LastMessage
	}
	return nil
}

func (x *ConversationSummary) GetUnreadCount() int32 {
	if x != nil {
		return x.UnreadCount
	}
	return 0
}

func (x *ConversationSummary) GetOnlineParticipants() []string {
	if x != nil {
		return x.OnlineParticipants
	}
	return nil
}

type GetConversationsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Conversations []*ConversationSummary `protobuf:"bytes,1,rep,name=conversations,proto3" json:"conversations,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetConversationsResponse) Reset() {
	*x = GetConversationsResponse{}
	mi := &file_proto_chat_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetConversationsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetConversationsResponse) ProtoMessage() {}

func (x *GetConversationsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_chat_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetConversationsResponse.ProtoReflect.Descriptor instead.
func (*GetConversationsResponse) Descriptor() ([]byte, []int) {
	return file_proto_chat_proto_rawDescGZIP(), []int{25}
}

func (x *GetConversationsResponse) GetConversations() []*ConversationSummary {
	if x != nil {
		return x.Conversations
	}
	return nil
}

type CreateConversationRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Participants  []string               `protobuf:"bytes,1,rep,name=participants,proto3" json:"participants,omitempty"`
	Kind          string                 `protobuf:"bytes,2,opt,name=kind,proto3" json:"kind,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateConversationRequest) Reset() {
	*x = CreateConversationRequest{}
	mi := &file_proto_chat_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateConversationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateConversationRequest) ProtoMessage() {}

func (x *CreateConversationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_chat_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateConversationRequest.ProtoReflect.Descriptor instead.
func (*CreateConversationRequest) Descriptor() ([]byte, []int) {
	return file_proto_chat_proto_rawDescGZIP(), []int{26}
}

func (x *CreateConversationRequest) GetParticipants() []string {
	if x != nil {
		return x.Participants
	}
	return nil
}

func (x *CreateConversationRequest) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

type GetOrCreateDirectRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PeerId        string                 `protobuf:"bytes,1,opt,name=peer_id,json=peerId,proto3" json:"peer_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetOrCreateDirectRequest) Reset() {
	*x = GetOrCreateDirectRequest{}
	mi := &file_proto_chat_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetOrCreateDirectRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetOrCreateDirectRequest) ProtoMessage() {}

func (x *GetOrCreateDirectRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_chat_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetOrCreateDirectRequest.ProtoReflect.Descriptor instead.
func (*GetOrCreateDirectRequest) Descriptor() ([]byte, []int) {
	return file_proto_chat_proto_rawDescGZIP(), []int{27}
}

func (x *GetOrCreateDirectRequest) GetPeerId() string {
	if x != nil {
		return x.PeerId
	}
	return ""
}

type Conversation struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Participants  []string               `protobuf:"bytes,2,rep,name=participants,proto3" json:"participants,omitempty"`
	Kind          string                 `protobuf:"bytes,3,opt,name=kind,proto3" json:"kind,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Conversation) Reset() {
	*x = Conversation{}
	mi := &file_proto_chat_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Conversation) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Conversation) ProtoMessage() {}

func (x *Conversation) ProtoReflect() protoreflect.Message {
	mi := &file_proto_chat_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Conversation.ProtoReflect.Descriptor instead.
func (*Conversation) Descriptor() ([]byte, []int) {
	return file_proto_chat_proto_rawDescGZIP(), []int{28}
}

func (x *Conversation) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Conversation) GetParticipants() []string {
	if x != nil {
		return x.Participants
	}
	return nil
}

func (x *Conversation) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *Conversation) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Conversation) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

type ConversationResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Conversation  *Conversation          `protobuf:"bytes,1,opt,name=conversation,proto3" json:"conversation,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConversationResponse) Reset() {
	*x = ConversationResponse{}
	mi := &file_proto_chat_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConversationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConversationResponse) ProtoMessage() {}

func (x *ConversationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_chat_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConversationResponse.ProtoReflect.Descriptor instead.
func (*ConversationResponse) Descriptor() ([]byte, []int) {
	return file_proto_chat_proto_rawDescGZIP(), []int{29}
}

func (x *ConversationResponse) GetConversation() *Conversation {
	if x != nil {
		return x.Conversation
	}
	return nil
}

type DeleteConversationRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ConversationId string                 `protobuf:"bytes,1,opt,name=conversation_id,json=conversationId,proto3" json:"conversation_id,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *DeleteConversationRequest) Reset() {
	*x = DeleteConversationRequest{}
	mi := &file_proto_chat_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteConversationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteConversationRequest) ProtoMessage() {}

func (x *DeleteConversationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_chat_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteConversationRequest.ProtoReflect.Descriptor instead.
func (*DeleteConversationRequest) Descriptor() ([]byte, []int) {
	return file_proto_chat_proto_rawDescGZIP(), []int{30}
}

func (x *DeleteConversationRequest) GetConversationId() string {
	if x != nil {
		return x.ConversationId
	}
	return ""
}

type DeleteConversationResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Success       bool                   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteConversationResponse) Reset() {
	*x = DeleteConversationResponse{}
	mi := &file_proto_chat_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteConversationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteConversationResponse) ProtoMessage() {}

func (x *DeleteConversationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_chat_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteConversationResponse.ProtoReflect.Descriptor instead.
func (*DeleteConversationResponse) Descriptor() ([]byte, []int) {
	return file_proto_chat_proto_rawDescGZIP(), []int{31}
}

func (x *DeleteConversationResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

var File_proto_chat_proto protoreflect.FileDescriptor

const file_proto_chat_proto_rawDesc = "" +
	"\n" +
	"\x10proto/chat.proto\x12\rchatgram.chat\x1a\x1fgoogle/protobuf/timestamp.proto\"\xec\x02\n" +
	"\vClientEvent\x125\n" +
	"\bregister\x18\x01 \x01(\v2\x17.chatgram.chat.RegisterH\x00R\bregister\x12/\n" +
	"\x06logout\x18\x02 \x01(\v2\x15.chatgram.chat.LogoutH\x00R\x06logout\x12N\n" +
	"\x11join_conversation\x18\x03 \x01(\v2\x1f.chatgram.chat.JoinConversationH\x00R\x10joinConversation\x12Q\n" +
	"\x12leave_conversation\x18\x04 \x01(\v2 .chatgram.chat.LeaveConversationH\x00R\x11leaveConversation\x12I\n" +
	"\x10get_online_users\x18\x05 \x01(\v2\x1d.chatgram.chat.GetOnlineUsersH\x00R\x0egetOnlineUsersB\a\n" +
	"\x05event\"\n" +
	"\n" +
	"\bRegister\"\b\n" +
	"\x06Logout\";\n" +
	"\x10JoinConversation\x12'\n" +
	"\x0fconversation_id\x18\x01 \x01(\tR\x0econversationId\"<\n" +
	"\x11LeaveConversation\x12'\n" +
	"\x0fconversation_id\x18\x01 \x01(\tR\x0econversationId\"\x10\n" +
	"\x0eGetOnlineUsers\"\xab\x05\n" +
	"\vServerEvent\x12<\n" +
	"\vuser_online\x18\x01 \x01(\v2\x19.chatgram.chat.UserOnlineH\x00R\n" +
	"userOnline\x12?\n" +
	"\fuser_offline\x18\x02 \x01(\v2\x1a.chatgram.chat.UserOfflineH\x00R\vuserOffline\x12>\n" +
	"\vnew_message\x18\x03 \x01(\v2\x1b.chatgram.chat.MessageEventH\x00R\n" +
	"newMessage\x12[\n" +
	"\x16message_status_updated\x18\x04 \x01(\v2#.chatgram.chat.MessageStatusUpdatedH\x00R\x14messageStatusUpdated\x12F\n" +
	"\x0fmessage_updated\x18\x05 \x01(\v2\x1b.chatgram.chat.MessageEventH\x00R\x0emessageUpdated\x12H\n" +
	"\x0fmessage_deleted\x18\x06 \x01(\v2\x1d.chatgram.chat.MessageDeletedH\x00R\x0emessageDeleted\x12a\n" +
	"\x18new_message_notification\x18\a \x01(\v2%.chatgram.chat.NewMessageNotificationH\x00R\x16newMessageNotification\x12A\n" +
	"\fnotification\x18\b \x01(\v2\x1b.chatgram.chat.NotificationH\x00R\fnotification\x12?\n" +
	"\fonline_users\x18\t \x01(\v2\x1a.chatgram.chat.OnlineUsersH\x00R\vonlineUsersB\a\n" +
	"\x05event\"%\n" +
	"\n" +
	"UserOnline\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\"&\n" +
	"\vUserOffline\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\"\xcf\x02\n" +
	"\fMessageEvent\x12\x1d\n" +
	"\n" +
	"message_id\x18\x01 \x01(\tR\tmessageId\x12'\n" +
	"\x0fconversation_id\x18\x02 \x01(\tR\x0econversationId\x12\x1b\n" +
	"\tsender_id\x18\x03 \x01(\tR\bsenderId\x12\x12\n" +
	"\x04text\x18\x04 \x01(\tR\x04text\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\x12!\n" +
	"\fdelivered_to\x18\x06 \x03(\tR\vdeliveredTo\x12\x17\n" +
	"\aseen_by\x18\a \x03(\tR\x06seenBy\x129\n" +
	"\n" +
	"created_at\x18\b \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x127\n" +
	"\tedited_at\x18\t \x01(\v2\x1a.google.protobuf.TimestampR\beditedAt\"\x8f\x01\n" +
	"\x14MessageStatusUpdated\x12\x1d\n" +
	"\n" +
	"message_id\x18\x01 \x01(\tR\tmessageId\x12'\n" +
	"\x0fconversation_id\x18\x02 \x01(\tR\x0econversationId\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12\x17\n" +
	"\auser_id\x18\x04 \x01(\tR\x06userId\"u\n" +
	"\x0eMessageDeleted\x12\x1d\n" +
	"\n" +
	"message_id\x18\x01 \x01(\tR\tmessageId\x12'\n" +
	"\x0fconversation_id\x18\x02 \x01(\tR\x0econversationId\x12\x1b\n" +
	"\tsender_id\x18\x03 \x01(\tR\bsenderId\"A\n" +
	"\x16NewMessageNotification\x12'\n" +
	"\x0fconversation_id\x18\x01 \x01(\tR\x0econversationId\"S\n" +
	"\fNotification\x12\x12\n" +
	"\x04kind\x18\x01 \x01(\tR\x04kind\x12\x1b\n" +
	"\tsender_id\x18\x02 \x01(\tR\bsenderId\x12\x12\n" +
	"\x04body\x18\x03 \x01(\tR\x04body\"(\n" +
	"\vOnlineUsers\x12\x19\n" +
	"\buser_ids\x18\x01 \x03(\tR\auserIds\"Q\n" +
	"\x12SendMessageRequest\x12'\n" +
	"\x0fconversation_id\x18\x01 \x01(\tR\x0econversationId\x12\x12\n" +
	"\x04text\x18\x02 \x01(\tR\x04text\"H\n" +
	"\x0fMessageResponse\x125\n" +
	"\amessage\x18\x01 \x01(\v2\x1b.chatgram.chat.MessageEventR\amessage\"G\n" +
	"\x12EditMessageRequest\x12\x1d\n" +
	"\n" +
	"message_id\x18\x01 \x01(\tR\tmessageId\x12\x12\n" +
	"\x04text\x18\x02 \x01(\tR\x04text\"5\n" +
	"\x14DeleteMessageRequest\x12\x1d\n" +
	"\n" +
	"message_id\x18\x01 \x01(\tR\tmessageId\"1\n" +
	"\x15DeleteMessageResponse\x12\x18\n" +
	"\asuccess\x18\x01 \x01(\bR\asuccess\"g\n" +
	"\x12GetMessagesRequest\x12'\n" +
	"\x0fconversation_id\x18\x01 \x01(\tR\x0econversationId\x12\x12\n" +
	"\x04page\x18\x02 \x01(\x05R\x04page\x12\x14\n" +
	"\x05limit\x18\x03 \x01(\x05R\x05limit\"N\n" +
	"\x13GetMessagesResponse\x127\n" +
	"\bmessages\x18\x01 \x03(\v2\x1b.chatgram.chat.MessageEventR\bmessages\"S\n" +
	"\x1aUpdateMessageStatusRequest\x12\x1d\n" +
	"\n" +
	"message_id\x18\x01 \x01(\tR\tmessageId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\"\x19\n" +
	"\x17GetConversationsRequest\"\x8a\x02\n" +
	"\x13ConversationSummary\x12'\n" +
	"\x0fconversation_id\x18\x01 \x01(\tR\x0econversationId\x12\"\n" +
	"\fparticipants\x18\x02 \x03(\tR\fparticipants\x12\x12\n" +
	"\x04kind\x18\x03 \x01(\tR\x04kind\x12>\n" +
	"\flast_message\x18\x04 \x01(\v2\x1b.chatgram.chat.MessageEventR\vlastMessage\x12!\n" +
	"\funread_count\x18\x05 \x01(\x05R\vunreadCount\x12/\n" +
	"\x13online_participants\x18\x06 \x03(\tR\x12onlineParticipants\"d\n" +
	"\x18GetConversationsResponse\x12H\n" +
	"\rconversations\x18\x01 \x03(\v2\".chatgram.chat.ConversationSummaryR\rconversations\"S\n" +
	"\x19CreateConversationRequest\x12\"\n" +
	"\fparticipants\x18\x01 \x03(\tR\fparticipants\x12\x12\n" +
	"\x04kind\x18\x02 \x01(\tR\x04kind\"3\n" +
	"\x18GetOrCreateDirectRequest\x12\x17\n" +
	"\apeer_id\x18\x01 \x01(\tR\x06peerId\"\xcc\x01\n" +
	"\fConversation\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\"\n" +
	"\fparticipants\x18\x02 \x03(\tR\fparticipants\x12\x12\n" +
	"\x04kind\x18\x03 \x01(\tR\x04kind\x129\n" +
	"\n" +
	"created_at\x18\x04 \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"updated_at\x18\x05 \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\"W\n" +
	"\x14ConversationResponse\x12?\n" +
	"\fconversation\x18\x01 \x01(\v2\x1b.chatgram.chat.ConversationR\fconversation\"D\n" +
	"\x19DeleteConversationRequest\x12'\n" +
	"\x0fconversation_id\x18\x01 \x01(\tR\x0econversationId\"6\n" +
	"\x1aDeleteConversationResponse\x12\x18\n" +
	"\asuccess\x18\x01 \x01(\bR\asuccess2\xa4\a\n" +
	"\vChatService\x12E\n" +
	"\aConnect\x12\x1a.chatgram.chat.ClientEvent\x1a\x1a.chatgram.chat.ServerEvent(\x010\x01\x12P\n" +
	"\vSendMessage\x12!.chatgram.chat.SendMessageRequest\x1a\x1e.chatgram.chat.MessageResponse\x12P\n" +
	"\vEditMessage\x12!.chatgram.chat.EditMessageRequest\x1a\x1e.chatgram.chat.MessageResponse\x12Z\n" +
	"\rDeleteMessage\x12#.chatgram.chat.DeleteMessageRequest\x1a$.chatgram.chat.DeleteMessageResponse\x12T\n" +
	"\vGetMessages\x12!.chatgram.chat.GetMessagesRequest\x1a\".chatgram.chat.GetMessagesResponse\x12`\n" +
	"\x13UpdateMessageStatus\x12).chatgram.chat.UpdateMessageStatusRequest\x1a\x1e.chatgram.chat.MessageResponse\x12c\n" +
	"\x10GetConversations\x12&.chatgram.chat.GetConversationsRequest\x1a'.chatgram.chat.GetConversationsResponse\x12c\n" +
	"\x12CreateConversation\x12(.chatgram.chat.CreateConversationRequest\x1a#.chatgram.chat.ConversationResponse\x12a\n" +
	"\x11GetOrCreateDirect\x12'.chatgram.chat.GetOrCreateDirectRequest\x1a#.chatgram.chat.ConversationResponse\x12i\n" +
	"\x12DeleteConversation\x12(.chatgram.chat.DeleteConversationRequest\x1a).chatgram.chat.DeleteConversationResponseB\x15Z\x13chatgram/proto/chatb\x06proto3"

var (
	file_proto_chat_proto_rawDescOnce sync.Once
	file_proto_chat_proto_rawDescData []byte
)

func file_proto_chat_proto_rawDescGZIP() []byte {
	file_proto_chat_proto_rawDescOnce.Do(func() {
		file_proto_chat_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_proto_chat_proto_rawDesc), len(file_proto_chat_proto_rawDesc)))
	})
	return file_proto_chat_proto_rawDescData
}

var file_proto_chat_proto_msgTypes = make([]protoimpl.MessageInfo, 32)
var file_proto_chat_proto_goTypes = []any{
	(*ClientEvent)(nil),                // 0: chatgram.chat.ClientEvent
	(*Register)(nil),                   // 1: chatgram.chat.Register
	(*Logout)(nil),                     // 2: chatgram.chat.Logout
	(*JoinConversation)(nil),           // 3: chatgram.chat.JoinConversation
	(*LeaveConversation)(nil),          // 4: chatgram.chat.LeaveConversation
	(*GetOnlineUsers)(nil),             // 5: chatgram.chat.GetOnlineUsers
	(*ServerEvent)(nil),                // 6: chatgram.chat.ServerEvent
	(*UserOnline)(nil),                 // 7: chatgram.chat.UserOnline
	(*UserOffline)(nil),                // 8: chatgram.chat.UserOffline
	(*MessageEvent)(nil),               // 9: chatgram.chat.MessageEvent
	(*MessageStatusUpdated)(nil),       // 10: chatgram.chat.MessageStatusUpdated
	(*MessageDeleted)(nil),             // 11: chatgram.chat.MessageDeleted
	(*NewMessageNotification)(nil),     // 12: chatgram.chat.NewMessageNotification
	(*Notification)(nil),               // 13: chatgram.chat.Notification
	(*OnlineUsers)(nil),                // 14: chatgram.chat.OnlineUsers
	(*SendMessageRequest)(nil),         // 15: chatgram.chat.SendMessageRequest
	(*MessageResponse)(nil),            // 16: chatgram.chat.MessageResponse
	(*EditMessageRequest)(nil),         // 17: chatgram.chat.EditMessageRequest
	(*DeleteMessageRequest)(nil),       // 18: chatgram.chat.DeleteMessageRequest
	(*DeleteMessageResponse)(nil),      // 19: chatgram.chat.DeleteMessageResponse
	(*GetMessagesRequest)(nil),         // 20: chatgram.chat.GetMessagesRequest
	(*GetMessagesResponse)(nil),        // 21: chatgram.chat.GetMessagesResponse
	(*UpdateMessageStatusRequest)(nil), // 22: chatgram.chat.UpdateMessageStatusRequest
	(*GetConversationsRequest)(nil),    // 23: chatgram.chat.GetConversationsRequest
	(*ConversationSummary)(nil),        // 24: chatgram.chat.ConversationSummary
	(*GetConversationsResponse)(nil),   // 25: chatgram.chat.GetConversationsResponse
	(*CreateConversationRequest)(nil),  // 26: chatgram.chat.CreateConversationRequest
	(*GetOrCreateDirectRequest)(nil),   // 27: chatgram.chat.GetOrCreateDirectRequest
	(*Conversation)(nil),               // 28: chatgram.chat.Conversation
	(*ConversationResponse)(nil),       // 29: chatgram.chat.ConversationResponse
	(*DeleteConversationRequest)(nil),  // 30: chatgram.chat.DeleteConversationRequest
	(*DeleteConversationResponse)(nil), // 31: chatgram.chat.DeleteConversationResponse
	(*timestamppb.Timestamp)(nil),      // 32: google.protobuf.Timestamp
}
var file_proto_chat_proto_depIdxs = []int32{
	1,  // 0: chatgram.chat.ClientEvent.register:type_name -> chatgram.chat.Register
	2,  // 1: chatgram.chat.ClientEvent.logout:type_name -> chatgram.chat.Logout
	3,  // 2: chatgram.chat.ClientEvent.join_conversation:type_name -> chatgram.chat.JoinConversation
	4,  // 3: chatgram.chat.ClientEvent.leave_conversation:type_name -> chatgram.chat.LeaveConversation
	5,  // 4: chatgram.chat.ClientEvent.get_online_users:type_name -> chatgram.chat.GetOnlineUsers
	7,  // 5: chatgram.chat.ServerEvent.user_online:type_name -> chatgram.chat.UserOnline
	8,  // 6: chatgram.chat.ServerEvent.user_offline:type_name -> chatgram.chat.UserOffline
	9,  // 7: chatgram.chat.ServerEvent.new_message:type_name -> chatgram.chat.MessageEvent
	10, // 8: chatgram.chat.ServerEvent.message_status_updated:type_name -> chatgram.chat.MessageStatusUpdated
	9,  // 9: chatgram.chat.ServerEvent.message_updated:type_name -> chatgram.chat.MessageEvent
	11, // 10: chatgram.chat.ServerEvent.message_deleted:type_name -> chatgram.chat.MessageDeleted
	12, // 11: chatgram.chat.ServerEvent.new_message_notification:type_name -> chatgram.chat.NewMessageNotification
	13, // 12: chatgram.chat.ServerEvent.notification:type_name -> chatgram.chat.Notification
	14, // 13: chatgram.chat.ServerEvent.online_users:type_name -> chatgram.chat.OnlineUsers
	32, // 14: chatgram.chat.MessageEvent.created_at:type_name -> google.protobuf.Timestamp
	32, // 15: chatgram.chat.MessageEvent.edited_at:type_name -> google.protobuf.Timestamp
	9,  // 16: chatgram.chat.MessageResponse.message:type_name -> chatgram.chat.MessageEvent
	9,  // 17: chatgram.chat.GetMessagesResponse.messages:type_name -> chatgram.chat.MessageEvent
	9,  // 18: chatgram.chat.ConversationSummary.last_message:type_name -> chatgram.chat.MessageEvent
	24, // 19: chatgram.chat.GetConversationsResponse.conversations:type_name -> chatgram.chat.ConversationSummary
	32, // 20: chatgram.chat.Conversation.created_at:type_name -> google.protobuf.Timestamp
	32, // 21: chatgram.chat.Conversation.updated_at:type_name -> google.protobuf.Timestamp
	28, // 22: chatgram.chat.ConversationResponse.conversation:type_name -> chatgram.chat.Conversation
	0,  // 23: chatgram.chat.ChatService.Connect:input_type -> chatgram.chat.ClientEvent
	15, // 24: chatgram.chat.ChatService.SendMessage:input_type -> chatgram.chat.SendMessageRequest
	17, // 25: chatgram.chat.ChatService.EditMessage:input_type -> chatgram.chat.EditMessageRequest
	18, // 26: chatgram.chat.ChatService.DeleteMessage:input_type -> chatgram.chat.DeleteMessageRequest
	20, // 27: chatgram.chat.ChatService.GetMessages:input_type -> chatgram.chat.GetMessagesRequest
	22, // 28: chatgram.chat.ChatService.UpdateMessageStatus:input_type -> chatgram.chat.UpdateMessageStatusRequest
	23, // 29: chatgram.chat.ChatService.GetConversations:input_type -> chatgram.chat.GetConversationsRequest
	26, // 30: chatgram.chat.ChatService.CreateConversation:input_type -> chatgram.chat.CreateConversationRequest
	27, // 31: chatgram.chat.ChatService.GetOrCreateDirect:input_type -> chatgram.chat.GetOrCreateDirectRequest
	30, // 32: chatgram.chat.ChatService.DeleteConversation:input_type -> chatgram.chat.DeleteConversationRequest
	6,  // 33: chatgram.chat.ChatService.Connect:output_type -> chatgram.chat.ServerEvent
	16, // 34: chatgram.chat.ChatService.SendMessage:output_type -> chatgram.chat.MessageResponse
	16, // 35: chatgram.chat.ChatService.EditMessage:output_type -> chatgram.chat.MessageResponse
	19, // 36: chatgram.chat.ChatService.DeleteMessage:output_type -> chatgram.chat.DeleteMessageResponse
	21, // 37: chatgram.chat.ChatService.GetMessages:output_type -> chatgram.chat.GetMessagesResponse
	16, // 38: chatgram.chat.ChatService.UpdateMessageStatus:output_type -> chatgram.chat.MessageResponse
	25, // 39: chatgram.chat.ChatService.GetConversations:output_type -> chatgram.chat.GetConversationsResponse
	29, // 40: chatgram.chat.ChatService.CreateConversation:output_type -> chatgram.chat.ConversationResponse
	29, // 41: chatgram.chat.ChatService.GetOrCreateDirect:output_type -> chatgram.chat.ConversationResponse
	31, // 42: chatgram.chat.ChatService.DeleteConversation:output_type -> chatgram.chat.DeleteConversationResponse
	33, // [33:43] is the sub-list for method output_type
	23, // [23:33] is the sub-list for method input_type
	23, // [23:23] is the sub-list for extension type_name
	23, // [23:23] is the sub-list for extension extendee
	0,  // [0:23] is the sub-list for field type_name
}

func init() { file_proto_chat_proto_init() }
func file_proto_chat_proto_init() {
	if File_proto_chat_proto != nil {
		return
	}
	file_proto_chat_proto_msgTypes[0].OneofWrappers = []any{
		(*ClientEvent_Register)(nil),
		(*ClientEvent_Logout)(nil),
		(*ClientEvent_JoinConversation)(nil),
		(*ClientEvent_LeaveConversation)(nil),
		(*ClientEvent_GetOnlineUsers)(nil),
	}
	file_proto_chat_proto_msgTypes[6].OneofWrappers = []any{
		(*ServerEvent_UserOnline)(nil),
		(*ServerEvent_UserOffline)(nil),
		(*ServerEvent_NewMessage)(nil),
		(*ServerEvent_MessageStatusUpdated)(nil),
		(*ServerEvent_MessageUpdated)(nil),
		(*ServerEvent_MessageDeleted)(nil),
		(*ServerEvent_NewMessageNotification)(nil),
		(*ServerEvent_Notification)(nil),
		(*ServerEvent_OnlineUsers)(nil),
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_proto_chat_proto_rawDesc), len(file_proto_chat_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   32,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_proto_chat_proto_goTypes,
		DependencyIndexes: file_proto_chat_proto_depIdxs,
		MessageInfos:      file_proto_chat_proto_msgTypes,
	}.Build()
	File_proto_chat_proto = out.File
	file_proto_chat_proto_goTypes = nil
	file_proto_chat_proto_depIdxs = nil
}
