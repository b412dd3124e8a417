package grpc

// proto.go defines the gRPC server interface derived from bib/onboarding/v1/onboarding.proto.
// This file serves as a stand-in for buf-generated code. Once `buf generate` is run,
// replace this file with the import from github.com/bibbank/onboarding/api/gen/go/bib/onboarding/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// OnboardingServiceServer is the server API for OnboardingService.
// It mirrors the proto-generated interface from bib.onboarding.v1.OnboardingService.
type OnboardingServiceServer interface {
	StartWizard(context.Context, *StartWizardRequest) (*StartWizardResponse, error)
	UpdateDraft(context.Context, *UpdateDraftRequest) (*UpdateDraftResponse, error)
	NextStep(context.Context, *NextStepRequest) (*NextStepResponse, error)
	PreviousStep(context.Context, *PreviousStepRequest) (*PreviousStepResponse, error)
	JumpToStep(context.Context, *JumpToStepRequest) (*JumpToStepResponse, error)
	SubmitApplication(context.Context, *SubmitApplicationRequest) (*SubmitApplicationResponse, error)
	ReviewApplication(context.Context, *ReviewApplicationRequest) (*ReviewApplicationResponse, error)
	GetApplication(context.Context, *GetApplicationRequest) (*GetApplicationResponse, error)
	ListApplications(context.Context, *ListApplicationsRequest) (*ListApplicationsResponse, error)
	DeleteApplication(context.Context, *DeleteApplicationRequest) (*DeleteApplicationResponse, error)
	ListAuditLog(context.Context, *ListAuditLogRequest) (*ListAuditLogResponse, error)
	AssistantFill(context.Context, *AssistantFillRequest) (*AssistantFillResponse, error)
	AssistantNavigate(context.Context, *AssistantNavigateRequest) (*AssistantNavigateResponse, error)
	mustEmbedUnimplementedOnboardingServiceServer()
}

// UnimplementedOnboardingServiceServer provides forward-compatible default implementations.
type UnimplementedOnboardingServiceServer struct{}

func (UnimplementedOnboardingServiceServer) StartWizard(context.Context, *StartWizardRequest) (*StartWizardResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method StartWizard not implemented")
}
func (UnimplementedOnboardingServiceServer) UpdateDraft(context.Context, *UpdateDraftRequest) (*UpdateDraftResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateDraft not implemented")
}
func (UnimplementedOnboardingServiceServer) NextStep(context.Context, *NextStepRequest) (*NextStepResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method NextStep not implemented")
}
func (UnimplementedOnboardingServiceServer) PreviousStep(context.Context, *PreviousStepRequest) (*PreviousStepResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PreviousStep not implemented")
}
func (UnimplementedOnboardingServiceServer) JumpToStep(context.Context, *JumpToStepRequest) (*JumpToStepResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method JumpToStep not implemented")
}
func (UnimplementedOnboardingServiceServer) SubmitApplication(context.Context, *SubmitApplicationRequest) (*SubmitApplicationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitApplication not implemented")
}
func (UnimplementedOnboardingServiceServer) ReviewApplication(context.Context, *ReviewApplicationRequest) (*ReviewApplicationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ReviewApplication not implemented")
}
func (UnimplementedOnboardingServiceServer) GetApplication(context.Context, *GetApplicationRequest) (*GetApplicationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetApplication not implemented")
}
func (UnimplementedOnboardingServiceServer) ListApplications(context.Context, *ListApplicationsRequest) (*ListApplicationsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListApplications not implemented")
}
func (UnimplementedOnboardingServiceServer) DeleteApplication(context.Context, *DeleteApplicationRequest) (*DeleteApplicationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteApplication not implemented")
}
func (UnimplementedOnboardingServiceServer) ListAuditLog(context.Context, *ListAuditLogRequest) (*ListAuditLogResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListAuditLog not implemented")
}
func (UnimplementedOnboardingServiceServer) AssistantFill(context.Context, *AssistantFillRequest) (*AssistantFillResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AssistantFill not implemented")
}
func (UnimplementedOnboardingServiceServer) AssistantNavigate(context.Context, *AssistantNavigateRequest) (*AssistantNavigateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AssistantNavigate not implemented")
}
func (UnimplementedOnboardingServiceServer) mustEmbedUnimplementedOnboardingServiceServer() {}

// RegisterOnboardingServiceServer registers the OnboardingServiceServer with the gRPC server.
func RegisterOnboardingServiceServer(s *grpclib.Server, srv OnboardingServiceServer) {
	s.RegisterService(&_OnboardingService_serviceDesc, srv)
}

var _OnboardingService_serviceDesc = grpclib.ServiceDesc{ //nolint:revive
	ServiceName: "bib.onboarding.v1.OnboardingService",
	HandlerType: (*OnboardingServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "StartWizard", Handler: _OnboardingService_StartWizard_Handler},
		{MethodName: "UpdateDraft", Handler: _OnboardingService_UpdateDraft_Handler},
		{MethodName: "NextStep", Handler: _OnboardingService_NextStep_Handler},
		{MethodName: "PreviousStep", Handler: _OnboardingService_PreviousStep_Handler},
		{MethodName: "JumpToStep", Handler: _OnboardingService_JumpToStep_Handler},
		{MethodName: "SubmitApplication", Handler: _OnboardingService_SubmitApplication_Handler},
		{MethodName: "ReviewApplication", Handler: _OnboardingService_ReviewApplication_Handler},
		{MethodName: "GetApplication", Handler: _OnboardingService_GetApplication_Handler},
		{MethodName: "ListApplications", Handler: _OnboardingService_ListApplications_Handler},
		{MethodName: "DeleteApplication", Handler: _OnboardingService_DeleteApplication_Handler},
		{MethodName: "ListAuditLog", Handler: _OnboardingService_ListAuditLog_Handler},
		{MethodName: "AssistantFill", Handler: _OnboardingService_AssistantFill_Handler},
		{MethodName: "AssistantNavigate", Handler: _OnboardingService_AssistantNavigate_Handler},
	},
	Streams: []grpclib.StreamDesc{},
}

func _OnboardingService_StartWizard_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) { //nolint:revive,errcheck // gRPC handler registration
	in := new(StartWizardRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OnboardingServiceServer).StartWizard(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/bib.onboarding.v1.OnboardingService/StartWizard",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OnboardingServiceServer).StartWizard(ctx, req.(*StartWizardRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OnboardingService_UpdateDraft_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) { //nolint:revive,errcheck // gRPC handler registration
	in := new(UpdateDraftRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OnboardingServiceServer).UpdateDraft(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/bib.onboarding.v1.OnboardingService/UpdateDraft",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OnboardingServiceServer).UpdateDraft(ctx, req.(*UpdateDraftRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OnboardingService_NextStep_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) { //nolint:revive,errcheck // gRPC handler registration
	in := new(NextStepRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OnboardingServiceServer).NextStep(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/bib.onboarding.v1.OnboardingService/NextStep",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OnboardingServiceServer).NextStep(ctx, req.(*NextStepRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OnboardingService_PreviousStep_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) { //nolint:revive,errcheck // gRPC handler registration
	in := new(PreviousStepRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OnboardingServiceServer).PreviousStep(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/bib.onboarding.v1.OnboardingService/PreviousStep",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OnboardingServiceServer).PreviousStep(ctx, req.(*PreviousStepRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OnboardingService_JumpToStep_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) { //nolint:revive,errcheck // gRPC handler registration
	in := new(JumpToStepRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OnboardingServiceServer).JumpToStep(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/bib.onboarding.v1.OnboardingService/JumpToStep",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OnboardingServiceServer).JumpToStep(ctx, req.(*JumpToStepRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OnboardingService_SubmitApplication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) { //nolint:revive,errcheck // gRPC handler registration
	in := new(SubmitApplicationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OnboardingServiceServer).SubmitApplication(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/bib.onboarding.v1.OnboardingService/SubmitApplication",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OnboardingServiceServer).SubmitApplication(ctx, req.(*SubmitApplicationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OnboardingService_ReviewApplication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) { //nolint:revive,errcheck // gRPC handler registration
	in := new(ReviewApplicationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OnboardingServiceServer).ReviewApplication(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/bib.onboarding.v1.OnboardingService/ReviewApplication",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OnboardingServiceServer).ReviewApplication(ctx, req.(*ReviewApplicationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OnboardingService_GetApplication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) { //nolint:revive,errcheck // gRPC handler registration
	in := new(GetApplicationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OnboardingServiceServer).GetApplication(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/bib.onboarding.v1.OnboardingService/GetApplication",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OnboardingServiceServer).GetApplication(ctx, req.(*GetApplicationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OnboardingService_ListApplications_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) { //nolint:revive,errcheck // gRPC handler registration
	in := new(ListApplicationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OnboardingServiceServer).ListApplications(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/bib.onboarding.v1.OnboardingService/ListApplications",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OnboardingServiceServer).ListApplications(ctx, req.(*ListApplicationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OnboardingService_DeleteApplication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) { //nolint:revive,errcheck // gRPC handler registration
	in := new(DeleteApplicationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OnboardingServiceServer).DeleteApplication(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/bib.onboarding.v1.OnboardingService/DeleteApplication",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OnboardingServiceServer).DeleteApplication(ctx, req.(*DeleteApplicationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OnboardingService_ListAuditLog_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) { //nolint:revive,errcheck // gRPC handler registration
	in := new(ListAuditLogRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OnboardingServiceServer).ListAuditLog(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/bib.onboarding.v1.OnboardingService/ListAuditLog",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OnboardingServiceServer).ListAuditLog(ctx, req.(*ListAuditLogRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OnboardingService_AssistantFill_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) { //nolint:revive,errcheck // gRPC handler registration
	in := new(AssistantFillRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OnboardingServiceServer).AssistantFill(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/bib.onboarding.v1.OnboardingService/AssistantFill",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OnboardingServiceServer).AssistantFill(ctx, req.(*AssistantFillRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OnboardingService_AssistantNavigate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) { //nolint:revive,errcheck // gRPC handler registration
	in := new(AssistantNavigateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OnboardingServiceServer).AssistantNavigate(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/bib.onboarding.v1.OnboardingService/AssistantNavigate",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OnboardingServiceServer).AssistantNavigate(ctx, req.(*AssistantNavigateRequest))
	}
	return interceptor(ctx, in, info, handler)
}
