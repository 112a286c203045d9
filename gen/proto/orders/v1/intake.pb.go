// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: orders/v1/intake.proto

package ordersv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
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

type EmailHeaders struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	From          string                 `protobuf:"bytes,1,opt,name=from,proto3" json:"from,omitempty"`
	To            string                 `protobuf:"bytes,2,opt,name=to,proto3" json:"to,omitempty"`
	Subject       string                 `protobuf:"bytes,3,opt,name=subject,proto3" json:"subject,omitempty"`
	Date          string                 `protobuf:"bytes,4,opt,name=date,proto3" json:"date,omitempty"`
	MessageId     string                 `protobuf:"bytes,5,opt,name=message_id,json=messageId,proto3" json:"message_id,omitempty"`
	References    string                 `protobuf:"bytes,6,opt,name=references,proto3" json:"references,omitempty"`
	InReplyTo     string                 `protobuf:"bytes,7,opt,name=in_reply_to,json=inReplyTo,proto3" json:"in_reply_to,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EmailHeaders) Reset() {
	*x = EmailHeaders{}
	mi := &file_orders_v1_intake_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EmailHeaders) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EmailHeaders) ProtoMessage() {}

func (x *EmailHeaders) ProtoReflect() protoreflect.Message {
	mi := &file_orders_v1_intake_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EmailHeaders.ProtoReflect.Descriptor instead.
func (*EmailHeaders) Descriptor() ([]byte, []int) {
	return file_orders_v1_intake_proto_rawDescGZIP(), []int{0}
}

func (x *EmailHeaders) GetFrom() string {
	if x != nil {
		return x.From
	}
	return ""
}

func (x *EmailHeaders) GetTo() string {
	if x != nil {
		return x.To
	}
	return ""
}

func (x *EmailHeaders) GetSubject() string {
	if x != nil {
		return x.Subject
	}
	return ""
}

func (x *EmailHeaders) GetDate() string {
	if x != nil {
		return x.Date
	}
	return ""
}

func (x *EmailHeaders) GetMessageId() string {
	if x != nil {
		return x.MessageId
	}
	return ""
}

func (x *EmailHeaders) GetReferences() string {
	if x != nil {
		return x.References
	}
	return ""
}

func (x *EmailHeaders) GetInReplyTo() string {
	if x != nil {
		return x.InReplyTo
	}
	return ""
}

type Attachment struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ContentType   string                 `protobuf:"bytes,1,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	FileName      string                 `protobuf:"bytes,2,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	Size          int32                  `protobuf:"varint,3,opt,name=size,proto3" json:"size,omitempty"`
	Content       []byte                 `protobuf:"bytes,4,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Attachment) Reset() {
	*x = Attachment{}
	mi := &file_orders_v1_intake_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Attachment) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Attachment) ProtoMessage() {}

func (x *Attachment) ProtoReflect() protoreflect.Message {
	mi := &file_orders_v1_intake_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Attachment.ProtoReflect.Descriptor instead.
func (*Attachment) Descriptor() ([]byte, []int) {
	return file_orders_v1_intake_proto_rawDescGZIP(), []int{1}
}

func (x *Attachment) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *Attachment) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *Attachment) GetSize() int32 {
	if x != nil {
		return x.Size
	}
	return 0
}

func (x *Attachment) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type IngestEmailRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AccountId     string                 `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	Headers       *EmailHeaders          `protobuf:"bytes,2,opt,name=headers,proto3" json:"headers,omitempty"`
	EnvelopeFrom  string                 `protobuf:"bytes,3,opt,name=envelope_from,json=envelopeFrom,proto3" json:"envelope_from,omitempty"`
	EnvelopeTo    []string               `protobuf:"bytes,4,rep,name=envelope_to,json=envelopeTo,proto3" json:"envelope_to,omitempty"`
	Plain         string                 `protobuf:"bytes,5,opt,name=plain,proto3" json:"plain,omitempty"`
	Html          string                 `protobuf:"bytes,6,opt,name=html,proto3" json:"html,omitempty"`
	Attachments   []*Attachment          `protobuf:"bytes,7,rep,name=attachments,proto3" json:"attachments,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestEmailRequest) Reset() {
	*x = IngestEmailRequest{}
	mi := &file_orders_v1_intake_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestEmailRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestEmailRequest) ProtoMessage() {}

func (x *IngestEmailRequest) ProtoReflect() protoreflect.Message {
	mi := &file_orders_v1_intake_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestEmailRequest.ProtoReflect.Descriptor instead.
func (*IngestEmailRequest) Descriptor() ([]byte, []int) {
	return file_orders_v1_intake_proto_rawDescGZIP(), []int{2}
}

func (x *IngestEmailRequest) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

func (x *IngestEmailRequest) GetHeaders() *EmailHeaders {
	if x != nil {
		return x.Headers
	}
	return nil
}

func (x *IngestEmailRequest) GetEnvelopeFrom() string {
	if x != nil {
		return x.EnvelopeFrom
	}
	return ""
}

func (x *IngestEmailRequest) GetEnvelopeTo() []string {
	if x != nil {
		return x.EnvelopeTo
	}
	return nil
}

func (x *IngestEmailRequest) GetPlain() string {
	if x != nil {
		return x.Plain
	}
	return ""
}

func (x *IngestEmailRequest) GetHtml() string {
	if x != nil {
		return x.Html
	}
	return ""
}

func (x *IngestEmailRequest) GetAttachments() []*Attachment {
	if x != nil {
		return x.Attachments
	}
	return nil
}

type OrderSummary struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OrderNumber   string                 `protobuf:"bytes,1,opt,name=order_number,json=orderNumber,proto3" json:"order_number,omitempty"`
	CustomerName  string                 `protobuf:"bytes,2,opt,name=customer_name,json=customerName,proto3" json:"customer_name,omitempty"`
	AccountNumber string                 `protobuf:"bytes,3,opt,name=account_number,json=accountNumber,proto3" json:"account_number,omitempty"`
	OrderDate     string                 `protobuf:"bytes,4,opt,name=order_date,json=orderDate,proto3" json:"order_date,omitempty"`
	TotalPieces   int32                  `protobuf:"varint,5,opt,name=total_pieces,json=totalPieces,proto3" json:"total_pieces,omitempty"`
	RepName       string                 `protobuf:"bytes,6,opt,name=rep_name,json=repName,proto3" json:"rep_name,omitempty"`
	ParseStatus   string                 `protobuf:"bytes,7,opt,name=parse_status,json=parseStatus,proto3" json:"parse_status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *OrderSummary) Reset() {
	*x = OrderSummary{}
	mi := &file_orders_v1_intake_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OrderSummary) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OrderSummary) ProtoMessage() {}

func (x *OrderSummary) ProtoReflect() protoreflect.Message {
	mi := &file_orders_v1_intake_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OrderSummary.ProtoReflect.Descriptor instead.
func (*OrderSummary) Descriptor() ([]byte, []int) {
	return file_orders_v1_intake_proto_rawDescGZIP(), []int{3}
}

func (x *OrderSummary) GetOrderNumber() string {
	if x != nil {
		return x.OrderNumber
	}
	return ""
}

func (x *OrderSummary) GetCustomerName() string {
	if x != nil {
		return x.CustomerName
	}
	return ""
}

func (x *OrderSummary) GetAccountNumber() string {
	if x != nil {
		return x.AccountNumber
	}
	return ""
}

func (x *OrderSummary) GetOrderDate() string {
	if x != nil {
		return x.OrderDate
	}
	return ""
}

func (x *OrderSummary) GetTotalPieces() int32 {
	if x != nil {
		return x.TotalPieces
	}
	return 0
}

func (x *OrderSummary) GetRepName() string {
	if x != nil {
		return x.RepName
	}
	return ""
}

func (x *OrderSummary) GetParseStatus() string {
	if x != nil {
		return x.ParseStatus
	}
	return ""
}

type EnrichedItem struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Sku                string                 `protobuf:"bytes,1,opt,name=sku,proto3" json:"sku,omitempty"`
	Brand              string                 `protobuf:"bytes,2,opt,name=brand,proto3" json:"brand,omitempty"`
	Model              string                 `protobuf:"bytes,3,opt,name=model,proto3" json:"model,omitempty"`
	ColorCode          string                 `protobuf:"bytes,4,opt,name=color_code,json=colorCode,proto3" json:"color_code,omitempty"`
	ColorName          string                 `protobuf:"bytes,5,opt,name=color_name,json=colorName,proto3" json:"color_name,omitempty"`
	Size               string                 `protobuf:"bytes,6,opt,name=size,proto3" json:"size,omitempty"`
	Quantity           int32                  `protobuf:"varint,7,opt,name=quantity,proto3" json:"quantity,omitempty"`
	OrderType          string                 `protobuf:"bytes,8,opt,name=order_type,json=orderType,proto3" json:"order_type,omitempty"`
	Upc                string                 `protobuf:"bytes,9,opt,name=upc,proto3" json:"upc,omitempty"`
	WholesaleCost      string                 `protobuf:"bytes,10,opt,name=wholesale_cost,json=wholesaleCost,proto3" json:"wholesale_cost,omitempty"`
	Msrp               string                 `protobuf:"bytes,11,opt,name=msrp,proto3" json:"msrp,omitempty"`
	ApiVerified        bool                   `protobuf:"varint,12,opt,name=api_verified,json=apiVerified,proto3" json:"api_verified,omitempty"`
	ConfidenceScore    int32                  `protobuf:"varint,13,opt,name=confidence_score,json=confidenceScore,proto3" json:"confidence_score,omitempty"`
	ValidationReason   string                 `protobuf:"bytes,14,opt,name=validation_reason,json=validationReason,proto3" json:"validation_reason,omitempty"`
	AvailabilityStatus string                 `protobuf:"bytes,15,opt,name=availability_status,json=availabilityStatus,proto3" json:"availability_status,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *EnrichedItem) Reset() {
	*x = EnrichedItem{}
	mi := &file_orders_v1_intake_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EnrichedItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EnrichedItem) ProtoMessage() {}

func (x *EnrichedItem) ProtoReflect() protoreflect.Message {
	mi := &file_orders_v1_intake_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EnrichedItem.ProtoReflect.Descriptor instead.
func (*EnrichedItem) Descriptor() ([]byte, []int) {
	return file_orders_v1_intake_proto_rawDescGZIP(), []int{4}
}

func (x *EnrichedItem) GetSku() string {
	if x != nil {
		return x.Sku
	}
	return ""
}

func (x *EnrichedItem) GetBrand() string {
	if x != nil {
		return x.Brand
	}
	return ""
}

func (x *EnrichedItem) GetModel() string {
	if x != nil {
		return x.Model
	}
	return ""
}

func (x *EnrichedItem) GetColorCode() string {
	if x != nil {
		return x.ColorCode
	}
	return ""
}

func (x *EnrichedItem) GetColorName() string {
	if x != nil {
		return x.ColorName
	}
	return ""
}

func (x *EnrichedItem) GetSize() string {
	if x != nil {
		return x.Size
	}
	return ""
}

func (x *EnrichedItem) GetQuantity() int32 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *EnrichedItem) GetOrderType() string {
	if x != nil {
		return x.OrderType
	}
	return ""
}

func (x *EnrichedItem) GetUpc() string {
	if x != nil {
		return x.Upc
	}
	return ""
}

func (x *EnrichedItem) GetWholesaleCost() string {
	if x != nil {
		return x.WholesaleCost
	}
	return ""
}

func (x *EnrichedItem) GetMsrp() string {
	if x != nil {
		return x.Msrp
	}
	return ""
}

func (x *EnrichedItem) GetApiVerified() bool {
	if x != nil {
		return x.ApiVerified
	}
	return false
}

func (x *EnrichedItem) GetConfidenceScore() int32 {
	if x != nil {
		return x.ConfidenceScore
	}
	return 0
}

func (x *EnrichedItem) GetValidationReason() string {
	if x != nil {
		return x.ValidationReason
	}
	return ""
}

func (x *EnrichedItem) GetAvailabilityStatus() string {
	if x != nil {
		return x.AvailabilityStatus
	}
	return ""
}

type EnrichmentStats struct {
	state                 protoimpl.MessageState `protogen:"open.v1"`
	TotalFrames           int32                  `protobuf:"varint,1,opt,name=total_frames,json=totalFrames,proto3" json:"total_frames,omitempty"`
	Validated             int32                  `protobuf:"varint,2,opt,name=validated,proto3" json:"validated,omitempty"`
	ValidationRate        float64                `protobuf:"fixed64,3,opt,name=validation_rate,json=validationRate,proto3" json:"validation_rate,omitempty"`
	ProcessingTimeSeconds float64                `protobuf:"fixed64,4,opt,name=processing_time_seconds,json=processingTimeSeconds,proto3" json:"processing_time_seconds,omitempty"`
	FramesPerSecond       float64                `protobuf:"fixed64,5,opt,name=frames_per_second,json=framesPerSecond,proto3" json:"frames_per_second,omitempty"`
	unknownFields         protoimpl.UnknownFields
	sizeCache             protoimpl.SizeCache
}

func (x *EnrichmentStats) Reset() {
	*x = EnrichmentStats{}
	mi := &file_orders_v1_intake_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EnrichmentStats) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EnrichmentStats) ProtoMessage() {}

func (x *EnrichmentStats) ProtoReflect() protoreflect.Message {
	mi := &file_orders_v1_intake_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EnrichmentStats.ProtoReflect.Descriptor instead.
func (*EnrichmentStats) Descriptor() ([]byte, []int) {
	return file_orders_v1_intake_proto_rawDescGZIP(), []int{5}
}

func (x *EnrichmentStats) GetTotalFrames() int32 {
	if x != nil {
		return x.TotalFrames
	}
	return 0
}

func (x *EnrichmentStats) GetValidated() int32 {
	if x != nil {
		return x.Validated
	}
	return 0
}

func (x *EnrichmentStats) GetValidationRate() float64 {
	if x != nil {
		return x.ValidationRate
	}
	return 0
}

func (x *EnrichmentStats) GetProcessingTimeSeconds() float64 {
	if x != nil {
		return x.ProcessingTimeSeconds
	}
	return 0
}

func (x *EnrichmentStats) GetFramesPerSecond() float64 {
	if x != nil {
		return x.FramesPerSecond
	}
	return 0
}

type IngestEmailResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Vendor        string                 `protobuf:"bytes,1,opt,name=vendor,proto3" json:"vendor,omitempty"`
	AccountNumber string                 `protobuf:"bytes,2,opt,name=account_number,json=accountNumber,proto3" json:"account_number,omitempty"`
	Order         *OrderSummary          `protobuf:"bytes,3,opt,name=order,proto3" json:"order,omitempty"`
	Items         []*EnrichedItem        `protobuf:"bytes,4,rep,name=items,proto3" json:"items,omitempty"`
	ParsedAt      string                 `protobuf:"bytes,5,opt,name=parsed_at,json=parsedAt,proto3" json:"parsed_at,omitempty"`
	Stats         *EnrichmentStats       `protobuf:"bytes,6,opt,name=stats,proto3" json:"stats,omitempty"`
	IsDuplicate   bool                   `protobuf:"varint,7,opt,name=is_duplicate,json=isDuplicate,proto3" json:"is_duplicate,omitempty"`
	DuplicateNote string                 `protobuf:"bytes,8,opt,name=duplicate_note,json=duplicateNote,proto3" json:"duplicate_note,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestEmailResponse) Reset() {
	*x = IngestEmailResponse{}
	mi := &file_orders_v1_intake_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestEmailResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestEmailResponse) ProtoMessage() {}

func (x *IngestEmailResponse) ProtoReflect() protoreflect.Message {
	mi := &file_orders_v1_intake_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestEmailResponse.ProtoReflect.Descriptor instead.
func (*IngestEmailResponse) Descriptor() ([]byte, []int) {
	return file_orders_v1_intake_proto_rawDescGZIP(), []int{6}
}

func (x *IngestEmailResponse) GetVendor() string {
	if x != nil {
		return x.Vendor
	}
	return ""
}

func (x *IngestEmailResponse) GetAccountNumber() string {
	if x != nil {
		return x.AccountNumber
	}
	return ""
}

func (x *IngestEmailResponse) GetOrder() *OrderSummary {
	if x != nil {
		return x.Order
	}
	return nil
}

func (x *IngestEmailResponse) GetItems() []*EnrichedItem {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *IngestEmailResponse) GetParsedAt() string {
	if x != nil {
		return x.ParsedAt
	}
	return ""
}

func (x *IngestEmailResponse) GetStats() *EnrichmentStats {
	if x != nil {
		return x.Stats
	}
	return nil
}

func (x *IngestEmailResponse) GetIsDuplicate() bool {
	if x != nil {
		return x.IsDuplicate
	}
	return false
}

func (x *IngestEmailResponse) GetDuplicateNote() string {
	if x != nil {
		return x.DuplicateNote
	}
	return ""
}

type CrawlVendorRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	VendorId      string                 `protobuf:"bytes,1,opt,name=vendor_id,json=vendorId,proto3" json:"vendor_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CrawlVendorRequest) Reset() {
	*x = CrawlVendorRequest{}
	mi := &file_orders_v1_intake_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CrawlVendorRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CrawlVendorRequest) ProtoMessage() {}

func (x *CrawlVendorRequest) ProtoReflect() protoreflect.Message {
	mi := &file_orders_v1_intake_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CrawlVendorRequest.ProtoReflect.Descriptor instead.
func (*CrawlVendorRequest) Descriptor() ([]byte, []int) {
	return file_orders_v1_intake_proto_rawDescGZIP(), []int{7}
}

func (x *CrawlVendorRequest) GetVendorId() string {
	if x != nil {
		return x.VendorId
	}
	return ""
}

type CrawlVendorResponse struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Brands          int32                  `protobuf:"varint,1,opt,name=brands,proto3" json:"brands,omitempty"`
	Models          int32                  `protobuf:"varint,2,opt,name=models,proto3" json:"models,omitempty"`
	Entries         int32                  `protobuf:"varint,3,opt,name=entries,proto3" json:"entries,omitempty"`
	Upserted        int32                  `protobuf:"varint,4,opt,name=upserted,proto3" json:"upserted,omitempty"`
	FailedBrands    []string               `protobuf:"bytes,5,rep,name=failed_brands,json=failedBrands,proto3" json:"failed_brands,omitempty"`
	DurationSeconds float64                `protobuf:"fixed64,6,opt,name=duration_seconds,json=durationSeconds,proto3" json:"duration_seconds,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *CrawlVendorResponse) Reset() {
	*x = CrawlVendorResponse{}
	mi := &file_orders_v1_intake_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CrawlVendorResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CrawlVendorResponse) ProtoMessage() {}

func (x *CrawlVendorResponse) ProtoReflect() protoreflect.Message {
	mi := &file_orders_v1_intake_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CrawlVendorResponse.ProtoReflect.Descriptor instead.
func (*CrawlVendorResponse) Descriptor() ([]byte, []int) {
	return file_orders_v1_intake_proto_rawDescGZIP(), []int{8}
}

func (x *CrawlVendorResponse) GetBrands() int32 {
	if x != nil {
		return x.Brands
	}
	return 0
}

func (x *CrawlVendorResponse) GetModels() int32 {
	if x != nil {
		return x.Models
	}
	return 0
}

func (x *CrawlVendorResponse) GetEntries() int32 {
	if x != nil {
		return x.Entries
	}
	return 0
}

func (x *CrawlVendorResponse) GetUpserted() int32 {
	if x != nil {
		return x.Upserted
	}
	return 0
}

func (x *CrawlVendorResponse) GetFailedBrands() []string {
	if x != nil {
		return x.FailedBrands
	}
	return nil
}

func (x *CrawlVendorResponse) GetDurationSeconds() float64 {
	if x != nil {
		return x.DurationSeconds
	}
	return 0
}

type ExportOrdersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AccountId     string                 `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, inclusive
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, inclusive
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportOrdersRequest) Reset() {
	*x = ExportOrdersRequest{}
	mi := &file_orders_v1_intake_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportOrdersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportOrdersRequest) ProtoMessage() {}

func (x *ExportOrdersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_orders_v1_intake_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportOrdersRequest.ProtoReflect.Descriptor instead.
func (*ExportOrdersRequest) Descriptor() ([]byte, []int) {
	return file_orders_v1_intake_proto_rawDescGZIP(), []int{9}
}

func (x *ExportOrdersRequest) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

func (x *ExportOrdersRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportOrdersRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportOrdersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	FileName      string                 `protobuf:"bytes,2,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportOrdersResponse) Reset() {
	*x = ExportOrdersResponse{}
	mi := &file_orders_v1_intake_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportOrdersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportOrdersResponse) ProtoMessage() {}

func (x *ExportOrdersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_orders_v1_intake_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportOrdersResponse.ProtoReflect.Descriptor instead.
func (*ExportOrdersResponse) Descriptor() ([]byte, []int) {
	return file_orders_v1_intake_proto_rawDescGZIP(), []int{10}
}

func (x *ExportOrdersResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportOrdersResponse) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

var File_orders_v1_intake_proto protoreflect.FileDescriptor

const file_orders_v1_intake_proto_rawDesc = "" +
	"\n" +
	"\x16orders/v1/intake.proto\x12\torders.v1\"\xbf\x01\n" +
	"\fEmailHeaders\x12\x12\n" +
	"\x04from\x18\x01 \x01(\tR\x04from\x12\x0e\n" +
	"\x02to\x18\x02 \x01(\tR\x02to\x12\x18\n" +
	"\asubject\x18\x03 \x01(\tR\asubject\x12\x12\n" +
	"\x04date\x18\x04 \x01(\tR\x04date\x12\x1d\n" +
	"\n" +
	"message_id\x18\x05 \x01(\tR\tmessageId\x12\x1e\n" +
	"\n" +
	"references\x18\x06 \x01(\tR\n" +
	"references\x12\x1e\n" +
	"\vin_reply_to\x18\a \x01(\tR\tinReplyTo\"z\n" +
	"\n" +
	"Attachment\x12!\n" +
	"\fcontent_type\x18\x01 \x01(\tR\vcontentType\x12\x1b\n" +
	"\tfile_name\x18\x02 \x01(\tR\bfileName\x12\x12\n" +
	"\x04size\x18\x03 \x01(\x05R\x04size\x12\x18\n" +
	"\acontent\x18\x04 \x01(\fR\acontent\"\x8f\x02\n" +
	"\x12IngestEmailRequest\x12\x1d\n" +
	"\n" +
	"account_id\x18\x01 \x01(\tR\taccountId\x121\n" +
	"\aheaders\x18\x02 \x01(\v2\x17.orders.v1.EmailHeadersR\aheaders\x12#\n" +
	"\renvelope_from\x18\x03 \x01(\tR\fenvelopeFrom\x12\x1f\n" +
	"\venvelope_to\x18\x04 \x03(\tR\n" +
	"envelopeTo\x12\x14\n" +
	"\x05plain\x18\x05 \x01(\tR\x05plain\x12\x12\n" +
	"\x04html\x18\x06 \x01(\tR\x04html\x127\n" +
	"\vattachments\x18\a \x03(\v2\x15.orders.v1.AttachmentR\vattachments\"\xfd\x01\n" +
	"\fOrderSummary\x12!\n" +
	"\forder_number\x18\x01 \x01(\tR\vorderNumber\x12#\n" +
	"\rcustomer_name\x18\x02 \x01(\tR\fcustomerName\x12%\n" +
	"\x0eaccount_number\x18\x03 \x01(\tR\raccountNumber\x12\x1d\n" +
	"\n" +
	"order_date\x18\x04 \x01(\tR\torderDate\x12!\n" +
	"\ftotal_pieces\x18\x05 \x01(\x05R\vtotalPieces\x12\x19\n" +
	"\brep_name\x18\x06 \x01(\tR\arepName\x12!\n" +
	"\fparse_status\x18\a \x01(\tR\vparseStatus\"\xd2\x03\n" +
	"\fEnrichedItem\x12\x10\n" +
	"\x03sku\x18\x01 \x01(\tR\x03sku\x12\x14\n" +
	"\x05brand\x18\x02 \x01(\tR\x05brand\x12\x14\n" +
	"\x05model\x18\x03 \x01(\tR\x05model\x12\x1d\n" +
	"\n" +
	"color_code\x18\x04 \x01(\tR\tcolorCode\x12\x1d\n" +
	"\n" +
	"color_name\x18\x05 \x01(\tR\tcolorName\x12\x12\n" +
	"\x04size\x18\x06 \x01(\tR\x04size\x12\x1a\n" +
	"\bquantity\x18\a \x01(\x05R\bquantity\x12\x1d\n" +
	"\n" +
	"order_type\x18\b \x01(\tR\torderType\x12\x10\n" +
	"\x03upc\x18\t \x01(\tR\x03upc\x12%\n" +
	"\x0ewholesale_cost\x18\n" +
	" \x01(\tR\rwholesaleCost\x12\x12\n" +
	"\x04msrp\x18\v \x01(\tR\x04msrp\x12!\n" +
	"\fapi_verified\x18\f \x01(\bR\vapiVerified\x12)\n" +
	"\x10confidence_score\x18\r \x01(\x05R\x0fconfidenceScore\x12+\n" +
	"\x11validation_reason\x18\x0e \x01(\tR\x10validationReason\x12/\n" +
	"\x13availability_status\x18\x0f \x01(\tR\x12availabilityStatus\"\xdf\x01\n" +
	"\x0fEnrichmentStats\x12!\n" +
	"\ftotal_frames\x18\x01 \x01(\x05R\vtotalFrames\x12\x1c\n" +
	"\tvalidated\x18\x02 \x01(\x05R\tvalidated\x12'\n" +
	"\x0fvalidation_rate\x18\x03 \x01(\x01R\x0evalidationRate\x126\n" +
	"\x17processing_time_seconds\x18\x04 \x01(\x01R\x15processingTimeSeconds\x12*\n" +
	"\x11frames_per_second\x18\x05 \x01(\x01R\x0fframesPerSecond\"\xcb\x02\n" +
	"\x13IngestEmailResponse\x12\x16\n" +
	"\x06vendor\x18\x01 \x01(\tR\x06vendor\x12%\n" +
	"\x0eaccount_number\x18\x02 \x01(\tR\raccountNumber\x12-\n" +
	"\x05order\x18\x03 \x01(\v2\x17.orders.v1.OrderSummaryR\x05order\x12-\n" +
	"\x05items\x18\x04 \x03(\v2\x17.orders.v1.EnrichedItemR\x05items\x12\x1b\n" +
	"\tparsed_at\x18\x05 \x01(\tR\bparsedAt\x120\n" +
	"\x05stats\x18\x06 \x01(\v2\x1a.orders.v1.EnrichmentStatsR\x05stats\x12!\n" +
	"\fis_duplicate\x18\a \x01(\bR\visDuplicate\x12%\n" +
	"\x0eduplicate_note\x18\b \x01(\tR\rduplicateNote\"1\n" +
	"\x12CrawlVendorRequest\x12\x1b\n" +
	"\tvendor_id\x18\x01 \x01(\tR\bvendorId\"\xcb\x01\n" +
	"\x13CrawlVendorResponse\x12\x16\n" +
	"\x06brands\x18\x01 \x01(\x05R\x06brands\x12\x16\n" +
	"\x06models\x18\x02 \x01(\x05R\x06models\x12\x18\n" +
	"\aentries\x18\x03 \x01(\x05R\aentries\x12\x1a\n" +
	"\bupserted\x18\x04 \x01(\x05R\bupserted\x12#\n" +
	"\rfailed_brands\x18\x05 \x03(\tR\ffailedBrands\x12)\n" +
	"\x10duration_seconds\x18\x06 \x01(\x01R\x0fdurationSeconds\"j\n" +
	"\x13ExportOrdersRequest\x12\x1d\n" +
	"\n" +
	"account_id\x18\x01 \x01(\tR\taccountId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"G\n" +
	"\x14ExportOrdersResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1b\n" +
	"\tfile_name\x18\x02 \x01(\tR\bfileName2`\n" +
	"\x10IngestionService\x12L\n" +
	"\vIngestEmail\x12\x1d.orders.v1.IngestEmailRequest\x1a\x1e.orders.v1.IngestEmailResponse2^\n" +
	"\x0eCatalogService\x12L\n" +
	"\vCrawlVendor\x12\x1d.orders.v1.CrawlVendorRequest\x1a\x1e.orders.v1.CrawlVendorResponse2`\n" +
	"\rExportService\x12O\n" +
	"\fExportOrders\x12\x1e.orders.v1.ExportOrdersRequest\x1a\x1f.orders.v1.ExportOrdersResponseB@Z>github.com/framedesk/order-intake/gen/proto/orders/v1;ordersv1b\x06proto3"

var (
	file_orders_v1_intake_proto_rawDescOnce sync.Once
	file_orders_v1_intake_proto_rawDescData []byte
)

func file_orders_v1_intake_proto_rawDescGZIP() []byte {
	file_orders_v1_intake_proto_rawDescOnce.Do(func() {
		file_orders_v1_intake_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_orders_v1_intake_proto_rawDesc), len(file_orders_v1_intake_proto_rawDesc)))
	})
	return file_orders_v1_intake_proto_rawDescData
}

var file_orders_v1_intake_proto_msgTypes = make([]protoimpl.MessageInfo, 11)
var file_orders_v1_intake_proto_goTypes = []any{
	(*EmailHeaders)(nil),         // 0: orders.v1.EmailHeaders
	(*Attachment)(nil),           // 1: orders.v1.Attachment
	(*IngestEmailRequest)(nil),   // 2: orders.v1.IngestEmailRequest
	(*OrderSummary)(nil),         // 3: orders.v1.OrderSummary
	(*EnrichedItem)(nil),         // 4: orders.v1.EnrichedItem
	(*EnrichmentStats)(nil),      // 5: orders.v1.EnrichmentStats
	(*IngestEmailResponse)(nil),  // 6: orders.v1.IngestEmailResponse
	(*CrawlVendorRequest)(nil),   // 7: orders.v1.CrawlVendorRequest
	(*CrawlVendorResponse)(nil),  // 8: orders.v1.CrawlVendorResponse
	(*ExportOrdersRequest)(nil),  // 9: orders.v1.ExportOrdersRequest
	(*ExportOrdersResponse)(nil), // 10: orders.v1.ExportOrdersResponse
}
var file_orders_v1_intake_proto_depIdxs = []int32{
	0,  // 0: orders.v1.IngestEmailRequest.headers:type_name -> orders.v1.EmailHeaders
	1,  // 1: orders.v1.IngestEmailRequest.attachments:type_name -> orders.v1.Attachment
	3,  // 2: orders.v1.IngestEmailResponse.order:type_name -> orders.v1.OrderSummary
	4,  // 3: orders.v1.IngestEmailResponse.items:type_name -> orders.v1.EnrichedItem
	5,  // 4: orders.v1.IngestEmailResponse.stats:type_name -> orders.v1.EnrichmentStats
	2,  // 5: orders.v1.IngestionService.IngestEmail:input_type -> orders.v1.IngestEmailRequest
	7,  // 6: orders.v1.CatalogService.CrawlVendor:input_type -> orders.v1.CrawlVendorRequest
	9,  // 7: orders.v1.ExportService.ExportOrders:input_type -> orders.v1.ExportOrdersRequest
	6,  // 8: orders.v1.IngestionService.IngestEmail:output_type -> orders.v1.IngestEmailResponse
	8,  // 9: orders.v1.CatalogService.CrawlVendor:output_type -> orders.v1.CrawlVendorResponse
	10, // 10: orders.v1.ExportService.ExportOrders:output_type -> orders.v1.ExportOrdersResponse
	8,  // [8:11] is the sub-list for method output_type
	5,  // [5:8] is the sub-list for method input_type
	5,  // [5:5] is the sub-list for extension type_name
	5,  // [5:5] is the sub-list for extension extendee
	0,  // [0:5] is the sub-list for field type_name
}

func init() { file_orders_v1_intake_proto_init() }
func file_orders_v1_intake_proto_init() {
	if File_orders_v1_intake_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_orders_v1_intake_proto_rawDesc), len(file_orders_v1_intake_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   11,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_orders_v1_intake_proto_goTypes,
		DependencyIndexes: file_orders_v1_intake_proto_depIdxs,
		MessageInfos:      file_orders_v1_intake_proto_msgTypes,
	}.Build()
	File_orders_v1_intake_proto = out.File
	file_orders_v1_intake_proto_goTypes = nil
	file_orders_v1_intake_proto_depIdxs = nil
}
