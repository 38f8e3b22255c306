package gpu

import (
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/limn3d/limn"
	"github.com/limn3d/limn/shaders"
)

// SphereRenderPass draws shaded sphere markers as instanced copies of a
// fixed unit-sphere triangle mesh uploaded once at construction.
type SphereRenderPass struct {
	pipeline       *wgpu.RenderPipeline
	bindGroup      *wgpu.BindGroup
	vertexBuffer   *wgpu.Buffer
	vertexCount    uint32
	instanceBuffer *wgpu.Buffer
	instanceCap    uint32
	instanceCount  uint32
	instances      []sphereInstance
	device         *wgpu.Device
}

func NewSphereRenderPass(device *wgpu.Device, format wgpu.TextureFormat, cameraBuffer *wgpu.Buffer) (*SphereRenderPass, error) {
	shaderModule, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "SphereShader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaders.SphereWGSL},
	})
	if err != nil {
		return nil, err
	}

	vertices := limn.SphereVertices()
	vertexSize := uint64(len(vertices)) * uint64(unsafe.Sizeof(vertices[0]))

	vertexBuffer, err := device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "SphereVertexBuffer",
		Size:  vertexSize,
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, err
	}
	device.GetQueue().WriteBuffer(vertexBuffer, 0, unsafe.Slice((*byte)(unsafe.Pointer(&vertices[0])), vertexSize))

	bgl, err := device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "SphereBGL",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: cameraUniformSize,
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
		Label:  "SpherePipeline",
		Layout: pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     shaderModule,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{
				{
					ArrayStride: uint64(unsafe.Sizeof(vertices[0])),
					StepMode:    wgpu.VertexStepModeVertex,
					Attributes: []wgpu.VertexAttribute{
						{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
					},
				},
				{
					ArrayStride: sphereInstanceSize,
					StepMode:    wgpu.VertexStepModeInstance,
					Attributes: []wgpu.VertexAttribute{
						{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 1},
						{Format: wgpu.VertexFormatFloat32, Offset: 12, ShaderLocation: 2},
						{Format: wgpu.VertexFormatFloat32x3, Offset: 16, ShaderLocation: 3},
						{Format: wgpu.VertexFormatFloat32x3, Offset: 28, ShaderLocation: 4},
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
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
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
		Label:  "SphereBG",
		Layout: bgl,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: cameraBuffer, Size: cameraUniformSize},
		},
	})
	if err != nil {
		return nil, err
	}

	return &SphereRenderPass{
		pipeline:     pipeline,
		bindGroup:    bindGroup,
		vertexBuffer: vertexBuffer,
		vertexCount:  uint32(len(vertices)),
		device:       device,
	}, nil
}

// Upload copies the frame's sphere instances into the instance buffer,
// growing it when needed. The input slice is not retained.
func (p *SphereRenderPass) Upload(queue *wgpu.Queue, spheres []limn.SphereInstance) {
	p.instances = appendSphereInstances(p.instances[:0], spheres)
	p.instanceCount = uint32(len(p.instances))
	if p.instanceCount == 0 {
		return
	}

	sizeBytes := uint64(len(p.instances)) * sphereInstanceSize
	if p.instanceBuffer == nil || p.instanceCap < p.instanceCount {
		if p.instanceBuffer != nil {
			p.instanceBuffer.Release()
		}
		p.instanceCap = p.instanceCount + instanceBufferMargin
		p.instanceBuffer, _ = p.device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: "SphereInstanceBuffer",
			Size:  uint64(p.instanceCap) * sphereInstanceSize,
			Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
		})
	}
	queue.WriteBuffer(p.instanceBuffer, 0, unsafe.Slice((*byte)(unsafe.Pointer(&p.instances[0])), sizeBytes))
}

func (p *SphereRenderPass) Draw(pass *wgpu.RenderPassEncoder) {
	if p.instanceCount == 0 {
		return
	}
	pass.SetPipeline(p.pipeline)
	pass.SetBindGroup(0, p.bindGroup, nil)
	pass.SetVertexBuffer(0, p.vertexBuffer, 0, p.vertexBuffer.GetSize())
	pass.SetVertexBuffer(1, p.instanceBuffer, 0, p.instanceBuffer.GetSize())
	pass.Draw(p.vertexCount, p.instanceCount, 0, 0)
}
