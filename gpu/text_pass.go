package gpu

import (
	"image"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/limn3d/limn/shaders"
)

// TextVertex matches the WGSL text VertexInput. Positions are in NDC,
// UVs address the glyph atlas.
type TextVertex struct {
	Pos   [2]float32
	UV    [2]float32
	Color [4]float32
}

// TextRenderPass draws pre-built screen-space glyph quads over the
// scene. It tests no depth so the overlay is never occluded.
type TextRenderPass struct {
	pipeline     *wgpu.RenderPipeline
	bindGroup    *wgpu.BindGroup
	vertexBuffer *wgpu.Buffer
	vertexCount  uint32
	device       *wgpu.Device
}

func NewTextRenderPass(device *wgpu.Device, format wgpu.TextureFormat, atlas *image.Alpha) (*TextRenderPass, error) {
	w, h := atlas.Bounds().Dx(), atlas.Bounds().Dy()
	tex, err := device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         "TextAtlas",
		Size:          wgpu.Extent3D{Width: uint32(w), Height: uint32(h), DepthOrArrayLayers: 1},
		Format:        wgpu.TextureFormatR8Unorm,
		Usage:         wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
		Dimension:     wgpu.TextureDimension2D,
		MipLevelCount: 1,
		SampleCount:   1,
	})
	if err != nil {
		return nil, err
	}
	device.GetQueue().WriteTexture(tex.AsImageCopy(), atlas.Pix, &wgpu.TextureDataLayout{
		Offset:       0,
		BytesPerRow:  uint32(w),
		RowsPerImage: uint32(h),
	}, &wgpu.Extent3D{Width: uint32(w), Height: uint32(h), DepthOrArrayLayers: 1})

	atlasView, err := tex.CreateView(nil)
	if err != nil {
		return nil, err
	}

	sampler, err := device.CreateSampler(&wgpu.SamplerDescriptor{
		MinFilter:     wgpu.FilterModeLinear,
		MagFilter:     wgpu.FilterModeLinear,
		MaxAnisotropy: 1,
	})
	if err != nil {
		return nil, err
	}

	shaderModule, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "TextShader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaders.TextWGSL},
	})
	if err != nil {
		return nil, err
	}

	pipeline, err := device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label: "TextPipeline",
		Vertex: wgpu.VertexState{
			Module:     shaderModule,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{
				{
					ArrayStride: uint64(unsafe.Sizeof(TextVertex{})),
					StepMode:    wgpu.VertexStepModeVertex,
					Attributes: []wgpu.VertexAttribute{
						{Format: wgpu.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
						{Format: wgpu.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},
						{Format: wgpu.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 2},
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
							DstFactor: wgpu.BlendFactorOne,
						},
					},
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology: wgpu.PrimitiveTopologyTriangleList,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            DepthFormat,
			DepthWriteEnabled: false,
			DepthCompare:      wgpu.CompareFunctionAlways,
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
		Label:  "TextBG",
		Layout: pipeline.GetBindGroupLayout(0),
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, TextureView: atlasView},
			{Binding: 1, Sampler: sampler},
		},
	})
	if err != nil {
		return nil, err
	}

	return &TextRenderPass{
		pipeline:  pipeline,
		bindGroup: bindGroup,
		device:    device,
	}, nil
}

// Upload copies the frame's glyph vertices into the vertex buffer,
// growing it when needed.
func (p *TextRenderPass) Upload(queue *wgpu.Queue, vertices []TextVertex) {
	p.vertexCount = uint32(len(vertices))
	if p.vertexCount == 0 {
		return
	}

	sizeBytes := uint64(len(vertices)) * uint64(unsafe.Sizeof(TextVertex{}))
	if p.vertexBuffer == nil || p.vertexBuffer.GetSize() < sizeBytes {
		if p.vertexBuffer != nil {
			p.vertexBuffer.Release()
		}
		p.vertexBuffer, _ = p.device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: "TextVertexBuffer",
			Size:  sizeBytes,
			Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
		})
	}
	queue.WriteBuffer(p.vertexBuffer, 0, unsafe.Slice((*byte)(unsafe.Pointer(&vertices[0])), sizeBytes))
}

func (p *TextRenderPass) Draw(pass *wgpu.RenderPassEncoder) {
	if p.vertexCount == 0 {
		return
	}
	pass.SetPipeline(p.pipeline)
	pass.SetBindGroup(0, p.bindGroup, nil)
	pass.SetVertexBuffer(0, p.vertexBuffer, 0, p.vertexBuffer.GetSize())
	pass.Draw(p.vertexCount, 1, 0, 0)
}
