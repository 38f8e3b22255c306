package gpu

import (
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/limn3d/limn"
	"github.com/limn3d/limn/shaders"
)

// instanceBufferMargin is the extra capacity allocated whenever an
// instance buffer has to grow, so small frame-to-frame fluctuations do
// not reallocate.
const instanceBufferMargin = 128

// LineRenderPass draws line segments as camera-facing dashed ribbons.
// Each segment is one instance; the vertex shader expands it to a four
// vertex triangle strip using the per-style corner offsets held in a
// small read-only storage buffer uploaded once at construction.
type LineRenderPass struct {
	pipeline       *wgpu.RenderPipeline
	bindGroup      *wgpu.BindGroup
	geometryBuffer *wgpu.Buffer
	instanceBuffer *wgpu.Buffer
	instanceCap    uint32
	instanceCount  uint32
	instances      []lineInstance
	device         *wgpu.Device
	log            limn.Logger
}

func NewLineRenderPass(device *wgpu.Device, format wgpu.TextureFormat, cameraBuffer *wgpu.Buffer, logger limn.Logger) (*LineRenderPass, error) {
	shaderModule, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "LineShader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaders.LineWGSL},
	})
	if err != nil {
		return nil, err
	}

	table := limn.GeometryTable()
	geometrySize := uint64(len(table)) * uint64(unsafe.Sizeof(table[0]))

	geometryBuffer, err := device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "LineGeometryBuffer",
		Size:  geometrySize,
		Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, err
	}
	device.GetQueue().WriteBuffer(geometryBuffer, 0, unsafe.Slice((*byte)(unsafe.Pointer(&table[0])), geometrySize))

	bgl, err := device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "LineBGL",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: cameraUniformSize,
				},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeReadOnlyStorage,
					MinBindingSize: geometrySize,
				},
			},
		},
	})
	if err != nil {
		return nil, err
	}

	pipelineLayout, err := device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		BindGroupLayouts: []*wgpu.BindGroupLayout{bgl},
	})
	if err != nil {
		return nil, err
	}

	pipeline, err := device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "LinePipeline",
		Layout: pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     shaderModule,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{
				{
					ArrayStride: lineInstanceSize,
					StepMode:    wgpu.VertexStepModeInstance,
					Attributes: []wgpu.VertexAttribute{
						{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
						{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
						{Format: wgpu.VertexFormatFloat32x3, Offset: 24, ShaderLocation: 2},
						{Format: wgpu.VertexFormatFloat32, Offset: 36, ShaderLocation: 3},
						{Format: wgpu.VertexFormatFloat32, Offset: 40, ShaderLocation: 4},
						{Format: wgpu.VertexFormatUint32, Offset: 44, ShaderLocation: 5},
						{Format: wgpu.VertexFormatFloat32, Offset: 48, ShaderLocation: 6},
					},
				},
			},
		},
		Fragment: &wgpu.FragmentState{
			Module:     shaderModule,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    format,
					WriteMask: wgpu.ColorWriteMaskAll,
					Blend: &wgpu.BlendState{
						Color: wgpu.BlendComponent{
							Operation: wgpu.BlendOperationAdd,
							SrcFactor: wgpu.BlendFactorSrcAlpha,
							DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
						},
						Alpha: wgpu.BlendComponent{
							Operation: wgpu.BlendOperationAdd,
							SrcFactor: wgpu.BlendFactorOne,
							DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
						},
					},
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleStrip,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            DepthFormat,
			DepthWriteEnabled: true,
			DepthCompare:      wgpu.CompareFunctionLessEqual,
			StencilFront:      wgpu.StencilFaceState{Compare: wgpu.CompareFunctionAlways},
			StencilBack:       wgpu.StencilFaceState{Compare: wgpu.CompareFunctionAlways},
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return nil, err
	}

	bindGroup, err := device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "LineBG",
		Layout: bgl,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: cameraBuffer, Size: cameraUniformSize},
			{Binding: 1, Buffer: geometryBuffer, Size: geometrySize},
		},
	})
	if err != nil {
		return nil, err
	}

	return &LineRenderPass{
		pipeline:       pipeline,
		bindGroup:      bindGroup,
		geometryBuffer: geometryBuffer,
		device:         device,
		log:            limn.OrNop(logger),
	}, nil
}

// Upload copies the frame's segments into the instance buffer, growing
// it when the count exceeds the current capacity. The input slice is
// not retained.
func (p *LineRenderPass) Upload(queue *wgpu.Queue, segments []limn.LineSegment) {
	p.instances = appendLineInstances(p.instances[:0], segments, p.log)
	p.instanceCount = uint32(len(p.instances))
	if p.instanceCount == 0 {
		return
	}

	sizeBytes := uint64(len(p.instances)) * lineInstanceSize
	if p.instanceBuffer == nil || p.instanceCap < p.instanceCount {
		if p.instanceBuffer != nil {
			p.instanceBuffer.Release()
		}
		p.instanceCap = p.instanceCount + instanceBufferMargin
		p.instanceBuffer, _ = p.device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: "LineInstanceBuffer",
			Size:  uint64(p.instanceCap) * lineInstanceSize,
			Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
		})
	}
	queue.WriteBuffer(p.instanceBuffer, 0, unsafe.Slice((*byte)(unsafe.Pointer(&p.instances[0])), sizeBytes))
}

func (p *LineRenderPass) Draw(pass *wgpu.RenderPassEncoder) {
	if p.instanceCount == 0 {
		return
	}
	pass.SetPipeline(p.pipeline)
	pass.SetBindGroup(0, p.bindGroup, nil)
	pass.SetVertexBuffer(0, p.instanceBuffer, 0, p.instanceBuffer.GetSize())
	pass.Draw(limn.VertsPerSegment, p.instanceCount, 0, 0)
}
