package libgl

import (
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

type GlCapability uint32

const (
	Blend       GlCapability = gl.BLEND
	ScissorTest GlCapability = gl.SCISSOR_TEST
)

type GlBlendFactor uint32

const (
	BlendZero             GlBlendFactor = gl.ZERO
	BlendOne              GlBlendFactor = gl.ONE
	BlendSrcAlpha         GlBlendFactor = gl.SRC_ALPHA
	BlendOneMinusSrcAlpha GlBlendFactor = gl.ONE_MINUS_SRC_ALPHA
)

type GlBlendEquation uint32

const (
	BlendFuncAdd GlBlendEquation = gl.FUNC_ADD
)

// Caches bound objects and fixed function state of the current context so
// redundant GL calls can be skipped. Only valid for the thread owning the context.
type GlStateManager struct {
	Caps                           map[GlCapability]bool
	TextureUnits                   []uint32
	ArrayBuffer, CopyWriteBuffer   uint32
	Program, VertexArray           uint32
	ReadFramebuffer                uint32
	ActiveTextureUnit              int
	ViewportRect, ScissorRect      [4]int
	BlendFactorSrc, BlendFactorDst GlBlendFactor
	BlendEquationMode              GlBlendEquation
	ClearColorRGBA                 [4]float32
}

var State *GlStateManager

func NewGlStateManager() *GlStateManager {
	return &GlStateManager{
		Caps:         map[GlCapability]bool{},
		TextureUnits: make([]uint32, 16),

		// GL defaults
		BlendFactorSrc:    BlendOne,
		BlendFactorDst:    BlendZero,
		BlendEquationMode: BlendFuncAdd,
	}
}

func (s *GlStateManager) Enable(cap GlCapability) {
	if s.Caps[cap] {
		return
	}
	gl.Enable(uint32(cap))
	s.Caps[cap] = true
}

func (s *GlStateManager) Disable(cap GlCapability) {
	if !s.Caps[cap] {
		return
	}
	gl.Disable(uint32(cap))
	s.Caps[cap] = false
}

// Enables exactly the given capabilities and disables every other one that is known to be enabled.
func (s *GlStateManager) SetEnabled(caps ...GlCapability) {
	want := map[GlCapability]bool{}
	for _, c := range caps {
		want[c] = true
	}
	for c, v := range s.Caps {
		if v && !want[c] {
			s.Disable(c)
		}
	}
	for c := range want {
		s.Enable(c)
	}
}

func (s *GlStateManager) BlendFunc(sfactor, dfactor GlBlendFactor) {
	if s.BlendFactorSrc == sfactor && s.BlendFactorDst == dfactor {
		return
	}
	gl.BlendFunc(uint32(sfactor), uint32(dfactor))
	s.BlendFactorSrc = sfactor
	s.BlendFactorDst = dfactor
}

func (s *GlStateManager) BlendEquation(mode GlBlendEquation) {
	if s.BlendEquationMode == mode {
		return
	}
	gl.BlendEquation(uint32(mode))
	s.BlendEquationMode = mode
}

func (s *GlStateManager) ActiveTexture(unit int) {
	if s.ActiveTextureUnit == unit {
		return
	}
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	s.ActiveTextureUnit = unit
}

func (s *GlStateManager) BindTextureUnit(unit int, target, texture uint32) {
	if s.TextureUnits[unit] == texture {
		return
	}
	s.ActiveTexture(unit)
	gl.BindTexture(target, texture)
	s.TextureUnits[unit] = texture
}

func (s *GlStateManager) BindBuffer(target uint32, buffer uint32) {
	switch target {
	case gl.ARRAY_BUFFER:
		s.BindArrayBuffer(buffer)
	case gl.COPY_WRITE_BUFFER:
		s.BindCopyWriteBuffer(buffer)
	default:
		// GL_ELEMENT_ARRAY_BUFFER is vertex array state and is never cached
		gl.BindBuffer(target, buffer)
	}
}

func (s *GlStateManager) BindArrayBuffer(buffer uint32) {
	if s.ArrayBuffer == buffer {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
	s.ArrayBuffer = buffer
}

func (s *GlStateManager) BindCopyWriteBuffer(buffer uint32) {
	if s.CopyWriteBuffer == buffer {
		return
	}
	gl.BindBuffer(gl.COPY_WRITE_BUFFER, buffer)
	s.CopyWriteBuffer = buffer
}

func (s *GlStateManager) BindReadFramebuffer(framebuffer uint32) {
	if s.ReadFramebuffer == framebuffer {
		return
	}
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, framebuffer)
	s.ReadFramebuffer = framebuffer
}

func (s *GlStateManager) UseProgram(program uint32) {
	if s.Program == program {
		return
	}
	gl.UseProgram(program)
	s.Program = program
}

func (s *GlStateManager) BindVertexArray(array uint32) {
	if s.VertexArray == array {
		return
	}
	gl.BindVertexArray(array)
	s.VertexArray = array
}

// Drops cached bindings of a deleted object; GL unbinds it implicitly.
func (s *GlStateManager) forget(id uint32) {
	if s.ArrayBuffer == id {
		s.ArrayBuffer = 0
	}
	if s.CopyWriteBuffer == id {
		s.CopyWriteBuffer = 0
	}
}

func (s *GlStateManager) Viewport(x, y, w, h int) {
	if s.ViewportRect[0] == x && s.ViewportRect[1] == y && s.ViewportRect[2] == w && s.ViewportRect[3] == h {
		return
	}
	gl.Viewport(int32(x), int32(y), int32(w), int32(h))
	s.ViewportRect = [4]int{x, y, w, h}
}

func (s *GlStateManager) Scissor(x, y, w, h int) {
	if s.ScissorRect[0] == x && s.ScissorRect[1] == y && s.ScissorRect[2] == w && s.ScissorRect[3] == h {
		return
	}
	gl.Scissor(int32(x), int32(y), int32(w), int32(h))
	s.ScissorRect = [4]int{x, y, w, h}
}

func (s *GlStateManager) ClearColor(r, g, b, a float32) {
	if s.ClearColorRGBA[0] == r && s.ClearColorRGBA[1] == g && s.ClearColorRGBA[2] == b && s.ClearColorRGBA[3] == a {
		return
	}
	gl.ClearColor(r, g, b, a)
	s.ClearColorRGBA = [4]float32{r, g, b, a}
}

// Reads the viewport from the driver, bypassing the cache.
func (s *GlStateManager) QueryViewport() [4]int {
	dims := [4]int32{}
	gl.GetIntegerv(gl.VIEWPORT, &dims[0])
	s.ViewportRect = [4]int{int(dims[0]), int(dims[1]), int(dims[2]), int(dims[3])}
	return s.ViewportRect
}

var GlEnv *GlEnvironment

type GlEnvironment struct {
	Vendor      string
	Renderer    string
	Version     string
	GlslVersion string
	VendorId    string
}

const (
	VendorIntel   = "intel"
	VendorNvidia  = "nvidia"
	VendorAmd     = "ati"
	VendorMesa    = "mesa"
	VendorUnknown = "unknown"
)

func GetGlEnv() *GlEnvironment {
	env := &GlEnvironment{
		Vendor:      gl.GoStr(gl.GetString(gl.VENDOR)),
		Renderer:    gl.GoStr(gl.GetString(gl.RENDERER)),
		Version:     gl.GoStr(gl.GetString(gl.VERSION)),
		GlslVersion: gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
	}

	vendor := strings.ToLower(env.Vendor)
	switch {
	case strings.Contains(vendor, "intel"):
		env.VendorId = VendorIntel
	case strings.Contains(vendor, "nvidia"):
		env.VendorId = VendorNvidia
	case strings.Contains(vendor, "ati ") || strings.Contains(vendor, "amd"):
		env.VendorId = VendorAmd
	case strings.Contains(vendor, "mesa") || strings.Contains(vendor, "x.org"):
		env.VendorId = VendorMesa
	default:
		env.VendorId = VendorUnknown
	}

	return env
}

func (env *GlEnvironment) String() string {
	return env.Renderer + " (" + env.Vendor + "), OpenGL " + env.Version + ", GLSL " + env.GlslVersion
}
