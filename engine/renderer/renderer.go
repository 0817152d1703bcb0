package renderer

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/Carmen-Shannon/wavescope-go/common"
	"github.com/Carmen-Shannon/wavescope-go/engine/wave"
	"github.com/cogentcore/webgpu/wgpu"
)

// ErrNotInitialized is returned by frame operations invoked before a
// successful Initialize.
var ErrNotInitialized = errors.New("renderer is not initialized")

// Renderer owns the full GPU object graph for the wave visualization:
// surface, adapter, device, queue, the single render pipeline, the
// static fullscreen-quad buffers, and the one uniform buffer. All GPU
// objects are created once during Initialize and live for the process
// lifetime; only the surface configuration and uniform buffer contents
// change afterwards.
type Renderer interface {
	// Initialize negotiates a GPU adapter and device for the given
	// surface target, configures the surface, compiles the wave shader,
	// and builds the render pipeline and static buffers. Blocks until
	// negotiation completes. Must be called exactly once before any
	// RenderFrame; calling it again returns an error.
	//
	// Parameters:
	//   - descriptor: the platform surface target (from the window layer)
	//   - width: initial surface width in pixels (must be > 0)
	//   - height: initial surface height in pixels (must be > 0)
	//
	// Returns:
	//   - error: a descriptive error if the target is missing or has zero
	//     extent, no compatible adapter exists, or device creation fails
	Initialize(descriptor *wgpu.SurfaceDescriptor, width, height int) error

	// Resize reconfigures the surface for a new size and updates the
	// cached logical size used to populate the uniform resolution field.
	// A zero width or height is a no-op, not an error: a hidden or
	// minimized window is a legitimate transient state.
	//
	// Parameters:
	//   - width: the new surface width in pixels
	//   - height: the new surface height in pixels
	Resize(width, height int)

	// RenderFrame writes the per-frame uniforms, acquires the next
	// presentable surface image, encodes one indexed draw over the
	// fullscreen quad, submits, and presents. A lost or outdated surface
	// returns a recoverable error after an internal reconfiguration; the
	// caller should skip the frame and try again on the next tick.
	//
	// Parameters:
	//   - time: elapsed seconds since visualization start
	//   - params: the audio-modulated wave parameters for this frame
	//
	// Returns:
	//   - error: ErrNotInitialized before Initialize, or a recoverable
	//     acquire/encode error
	RenderFrame(time float32, params wave.Params) error

	// Size returns the cached logical surface size from the last
	// successful Initialize or Resize.
	//
	// Returns:
	//   - width: surface width in pixels
	//   - height: surface height in pixels
	Size() (width, height int)
}

// waveRenderer is the wgpu implementation of the Renderer interface.
type waveRenderer struct {
	mu *sync.Mutex

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	surface  *wgpu.Surface
	device   *wgpu.Device
	queue    *wgpu.Queue

	surfaceFormat wgpu.TextureFormat
	alphaMode     wgpu.CompositeAlphaMode
	presentMode   wgpu.PresentMode

	width  int
	height int

	renderPipeline *wgpu.RenderPipeline
	vertexBuffer   *wgpu.Buffer
	indexBuffer    *wgpu.Buffer
	indexCount     uint32
	uniformBuffer  *wgpu.Buffer
	bindGroup      *wgpu.BindGroup

	forceFallbackAdapter bool
	initialized          bool
}

var _ Renderer = &waveRenderer{}

// NewRenderer creates an uninitialized Renderer with the provided
// options. Call Initialize with a surface descriptor before rendering.
//
// Parameters:
//   - options: functional options to configure the renderer
//
// Returns:
//   - Renderer: the configured renderer (not yet initialized)
func NewRenderer(options ...RendererBuilderOption) Renderer {
	r := &waveRenderer{
		mu:          &sync.Mutex{},
		presentMode: wgpu.PresentModeFifo,
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

func (r *waveRenderer) Initialize(descriptor *wgpu.SurfaceDescriptor, width, height int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.initialized {
		return errors.New("renderer is already initialized")
	}
	if descriptor == nil {
		return errors.New("surface target is nil, the window must be created first")
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("surface has zero extent (%dx%d)", width, height)
	}

	r.instance = wgpu.CreateInstance(nil)
	r.surface = r.instance.CreateSurface(descriptor)

	adapter, err := r.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: r.forceFallbackAdapter,
		CompatibleSurface:    r.surface,
	})
	if err != nil {
		return fmt.Errorf("no compatible GPU adapter: %w", err)
	}
	r.adapter = adapter

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Wavescope Device",
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: wgpu.DefaultLimits(),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create GPU device: %w", err)
	}
	r.device = device
	r.queue = device.GetQueue()

	capabilities := r.surface.GetCapabilities(r.adapter)
	if len(capabilities.Formats) == 0 {
		return errors.New("surface reports no supported texture formats")
	}
	r.surfaceFormat = preferredSurfaceFormat(capabilities.Formats)
	r.alphaMode = capabilities.AlphaModes[0]

	r.width = width
	r.height = height
	r.configureSurface()

	if err := r.buildPipeline(); err != nil {
		return err
	}

	uniforms := DefaultGPUUniforms(width, height)
	r.queue.WriteBuffer(r.uniformBuffer, 0, uniforms.Marshal())

	r.initialized = true
	log.Printf("[renderer] initialized %dx%d, format %v", width, height, r.surfaceFormat)
	return nil
}

// configureSurface applies the current size and format to the surface.
// Caller must hold r.mu.
func (r *waveRenderer) configureSurface() {
	r.surface.Configure(r.adapter, r.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      r.surfaceFormat,
		Width:       uint32(r.width),
		Height:      uint32(r.height),
		PresentMode: r.presentMode,
		AlphaMode:   r.alphaMode,
	})
}

// buildPipeline compiles the wave shader and creates the render
// pipeline, bind group, and static buffers. Called once from
// Initialize; caller must hold r.mu.
func (r *waveRenderer) buildPipeline() error {
	shaderModule, err := r.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: "Wave Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: waveShaderSource,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to compile wave shader: %w", err)
	}

	var uniforms GPUUniforms
	r.uniformBuffer, err = r.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Uniform Buffer",
		Size:  uint64(uniforms.Size()),
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("failed to create uniform buffer: %w", err)
	}

	bindGroupLayout, err := r.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "Uniform Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: uint64(uniforms.Size()),
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create bind group layout: %w", err)
	}

	r.bindGroup, err = r.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Uniform Bind Group",
		Layout: bindGroupLayout,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  r.uniformBuffer,
				Offset:  0,
				Size:    wgpu.WholeSize,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create bind group: %w", err)
	}

	pipelineLayout, err := r.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "Wave Pipeline Layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{bindGroupLayout},
	})
	if err != nil {
		return fmt.Errorf("failed to create pipeline layout: %w", err)
	}

	var vertex GPUVertex
	r.renderPipeline, err = r.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "Wave Render Pipeline",
		Layout: pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     shaderModule,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{
				{
					ArrayStride: uint64(vertex.Size()),
					StepMode:    wgpu.VertexStepModeVertex,
					Attributes: []wgpu.VertexAttribute{
						{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
						{Format: wgpu.VertexFormatFloat32x2, Offset: 12, ShaderLocation: 1},
					},
				},
			},
		},
		Fragment: &wgpu.FragmentState{
			Module:     shaderModule,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format: r.surfaceFormat,
					Blend: &wgpu.BlendState{
						Color: wgpu.BlendComponent{
							SrcFactor: wgpu.BlendFactorSrcAlpha,
							DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
							Operation: wgpu.BlendOperationAdd,
						},
						Alpha: wgpu.BlendComponent{
							SrcFactor: wgpu.BlendFactorOne,
							DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
							Operation: wgpu.BlendOperationAdd,
						},
					},
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create render pipeline: %w", err)
	}

	vertexData := common.SliceToBytes(quadVertices)
	r.vertexBuffer, err = r.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Quad Vertex Buffer",
		Size:  uint64(len(vertexData)),
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("failed to create vertex buffer: %w", err)
	}
	r.queue.WriteBuffer(r.vertexBuffer, 0, vertexData)

	indexData := common.SliceToBytes(quadIndices)
	r.indexBuffer, err = r.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Quad Index Buffer",
		Size:  uint64(len(indexData)),
		Usage: wgpu.BufferUsageIndex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("failed to create index buffer: %w", err)
	}
	r.queue.WriteBuffer(r.indexBuffer, 0, indexData)
	r.indexCount = uint32(len(quadIndices))

	return nil
}

func (r *waveRenderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.initialized {
		return
	}

	r.width = width
	r.height = height
	r.configureSurface()
}

func (r *waveRenderer) RenderFrame(time float32, params wave.Params) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.initialized {
		return ErrNotInitialized
	}

	uniforms := NewGPUUniforms(time, r.width, r.height, params)
	r.queue.WriteBuffer(r.uniformBuffer, 0, uniforms.Marshal())

	surfaceTexture, err := r.surface.GetCurrentTexture()
	if err != nil {
		// Lost or outdated surface. Reconfigure so the next frame can
		// re-acquire, and report the skipped frame to the caller.
		r.configureSurface()
		return fmt.Errorf("failed to acquire surface texture: %w", err)
	}

	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		surfaceTexture.Release()
		return fmt.Errorf("failed to create surface view: %w", err)
	}

	encoder, err := r.device.CreateCommandEncoder(nil)
	if err != nil {
		view.Release()
		surfaceTexture.Release()
		return fmt.Errorf("failed to create command encoder: %w", err)
	}

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:   view,
				LoadOp: wgpu.LoadOpClear,
				StoreOp: wgpu.StoreOpStore,
				ClearValue: wgpu.Color{
					R: 0.02, G: 0.02, B: 0.05, A: 1.0,
				},
			},
		},
	})
	pass.SetPipeline(r.renderPipeline)
	pass.SetBindGroup(0, r.bindGroup, nil)
	pass.SetVertexBuffer(0, r.vertexBuffer, 0, wgpu.WholeSize)
	pass.SetIndexBuffer(r.indexBuffer, wgpu.IndexFormatUint16, 0, wgpu.WholeSize)
	pass.DrawIndexed(r.indexCount, 1, 0, 0, 0)
	pass.End()

	commandBuffer, err := encoder.Finish(nil)
	if err != nil {
		encoder.Release()
		view.Release()
		surfaceTexture.Release()
		return fmt.Errorf("failed to finish command encoder: %w", err)
	}

	r.queue.Submit(commandBuffer)
	r.surface.Present()

	commandBuffer.Release()
	encoder.Release()
	view.Release()
	surfaceTexture.Release()

	return nil
}

func (r *waveRenderer) Size() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width, r.height
}

// preferredSurfaceFormat picks the first sRGB-capable format, falling
// back to the first available format if none is sRGB.
//
// Parameters:
//   - formats: the surface's supported formats, preference-ordered
//
// Returns:
//   - wgpu.TextureFormat: the format to configure the surface with
func preferredSurfaceFormat(formats []wgpu.TextureFormat) wgpu.TextureFormat {
	for _, f := range formats {
		if f == wgpu.TextureFormatBGRA8UnormSrgb || f == wgpu.TextureFormatRGBA8UnormSrgb {
			return f
		}
	}
	return formats[0]
}
