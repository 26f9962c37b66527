package rpc

import "github.com/golang/protobuf/proto"

// Message types for rules.proto. Field tags follow the proto3 wire
// layout so the default grpc codec can marshal them.

type DestinationsRequest struct {
	Position string `protobuf:"bytes,1,opt,name=position,proto3" json:"position,omitempty"`
	Row      int32  `protobuf:"varint,2,opt,name=row,proto3" json:"row,omitempty"`
	Col      int32  `protobuf:"varint,3,opt,name=col,proto3" json:"col,omitempty"`
}

func (m *DestinationsRequest) Reset()         { *m = DestinationsRequest{} }
func (m *DestinationsRequest) String() string { return proto.CompactTextString(m) }
func (*DestinationsRequest) ProtoMessage()    {}

type Destination struct {
	Square   string   `protobuf:"bytes,1,opt,name=square,proto3" json:"square,omitempty"`
	Path     []string `protobuf:"bytes,2,rep,name=path,proto3" json:"path,omitempty"`
	Captured []string `protobuf:"bytes,3,rep,name=captured,proto3" json:"captured,omitempty"`
}

func (m *Destination) Reset()         { *m = Destination{} }
func (m *Destination) String() string { return proto.CompactTextString(m) }
func (*Destination) ProtoMessage()    {}

type DestinationsResponse struct {
	Destinations []*Destination `protobuf:"bytes,1,rep,name=destinations,proto3" json:"destinations,omitempty"`
}

func (m *DestinationsResponse) Reset()         { *m = DestinationsResponse{} }
func (m *DestinationsResponse) String() string { return proto.CompactTextString(m) }
func (*DestinationsResponse) ProtoMessage()    {}

type ApplyRequest struct {
	Position string `protobuf:"bytes,1,opt,name=position,proto3" json:"position,omitempty"`
	Move     string `protobuf:"bytes,2,opt,name=move,proto3" json:"move,omitempty"`
}

func (m *ApplyRequest) Reset()         { *m = ApplyRequest{} }
func (m *ApplyRequest) String() string { return proto.CompactTextString(m) }
func (*ApplyRequest) ProtoMessage()    {}

type ApplyResponse struct {
	Position string   `protobuf:"bytes,1,opt,name=position,proto3" json:"position,omitempty"`
	Move     string   `protobuf:"bytes,2,opt,name=move,proto3" json:"move,omitempty"`
	Captured []string `protobuf:"bytes,3,rep,name=captured,proto3" json:"captured,omitempty"`
	Crowned  bool     `protobuf:"varint,4,opt,name=crowned,proto3" json:"crowned,omitempty"`
}

func (m *ApplyResponse) Reset()         { *m = ApplyResponse{} }
func (m *ApplyResponse) String() string { return proto.CompactTextString(m) }
func (*ApplyResponse) ProtoMessage()    {}

type StatusRequest struct {
	Position string `protobuf:"bytes,1,opt,name=position,proto3" json:"position,omitempty"`
}

func (m *StatusRequest) Reset()         { *m = StatusRequest{} }
func (m *StatusRequest) String() string { return proto.CompactTextString(m) }
func (*StatusRequest) ProtoMessage()    {}

type StatusResponse struct {
	// ToMove and Winner are player numbers, 1 or 2. Winner is 0
	// unless Over is set.
	ToMove int32    `protobuf:"varint,1,opt,name=to_move,json=toMove,proto3" json:"to_move,omitempty"`
	Over   bool     `protobuf:"varint,2,opt,name=over,proto3" json:"over,omitempty"`
	Winner int32    `protobuf:"varint,3,opt,name=winner,proto3" json:"winner,omitempty"`
	Moves  []string `protobuf:"bytes,4,rep,name=moves,proto3" json:"moves,omitempty"`
	Pieces []int32  `protobuf:"varint,5,rep,packed,name=pieces,proto3" json:"pieces,omitempty"`
}

func (m *StatusResponse) Reset()         { *m = StatusResponse{} }
func (m *StatusResponse) String() string { return proto.CompactTextString(m) }
func (*StatusResponse) ProtoMessage()    {}

type PerftRequest struct {
	Position string `protobuf:"bytes,1,opt,name=position,proto3" json:"position,omitempty"`
	Depth    int32  `protobuf:"varint,2,opt,name=depth,proto3" json:"depth,omitempty"`
}

func (m *PerftRequest) Reset()         { *m = PerftRequest{} }
func (m *PerftRequest) String() string { return proto.CompactTextString(m) }
func (*PerftRequest) ProtoMessage()    {}

type PerftResponse struct {
	Nodes      uint64 `protobuf:"varint,1,opt,name=nodes,proto3" json:"nodes,omitempty"`
	Captures   uint64 `protobuf:"varint,2,opt,name=captures,proto3" json:"captures,omitempty"`
	Promotions uint64 `protobuf:"varint,3,opt,name=promotions,proto3" json:"promotions,omitempty"`
}

func (m *PerftResponse) Reset()         { *m = PerftResponse{} }
func (m *PerftResponse) String() string { return proto.CompactTextString(m) }
func (*PerftResponse) ProtoMessage()    {}
