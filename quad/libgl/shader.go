package libgl

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

type ShaderCompileError struct {
	Stage string
	Log   string
}

func (err *ShaderCompileError) Error() string {
	return fmt.Sprintf("failed to compile %v shader, log: %v", err.Stage, err.Log)
}

type ShaderLinkError struct {
	Name string
	Log  string
}

func (err *ShaderLinkError) Error() string {
	return fmt.Sprintf("failed to link %v shader program, log: %v", err.Name, err.Log)
}

type shaderProgram struct {
	glId             uint32
	name             string
	uniformLocations map[string]int32
}

type UnboundShaderProgram interface {
	Id() uint32
	Bind() BoundShaderProgram
	GetUniformLocation(name string) int32
	Delete()
}

type BoundShaderProgram interface {
	UnboundShaderProgram
	SetUniform(name string, value any)
}

// Compiles both stages and links them into a program. The stage objects are
// deleted before returning, whether linking succeeded or not.
func NewShaderProgram(name, vertexSource, fragmentSource string) (UnboundShaderProgram, error) {
	vsh, err := compileShader(gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", name, err)
	}
	defer gl.DeleteShader(vsh)

	fsh, err := compileShader(gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", name, err)
	}
	defer gl.DeleteShader(fsh)

	id := gl.CreateProgram()
	gl.AttachShader(id, vsh)
	gl.AttachShader(id, fsh)
	gl.LinkProgram(id)
	gl.DetachShader(id, vsh)
	gl.DetachShader(id, fsh)

	var ok int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &ok)
	if ok == gl.FALSE {
		err := &ShaderLinkError{Name: name, Log: readProgramInfoLog(id)}
		gl.DeleteProgram(id)
		return nil, err
	}

	return &shaderProgram{
		glId:             id,
		name:             name,
		uniformLocations: map[string]int32{},
	}, nil
}

func stageName(stage uint32) string {
	switch stage {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	case gl.GEOMETRY_SHADER:
		return "geometry"
	}
	return fmt.Sprintf("0x%04x", stage)
}

func compileShader(stage uint32, source string) (uint32, error) {
	id := gl.CreateShader(stage)
	cStrs, free := gl.Strs(source + "\x00")
	gl.ShaderSource(id, 1, cStrs, nil)
	free()
	gl.CompileShader(id)

	var ok int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &ok)
	if ok == gl.FALSE {
		err := &ShaderCompileError{Stage: stageName(stage), Log: readShaderInfoLog(id)}
		gl.DeleteShader(id)
		return 0, err
	}
	return id, nil
}

func readShaderInfoLog(id uint32) string {
	var logLength int32
	gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}

	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(id, logLength, nil, gl.Str(log))
	return strings.TrimSpace(strings.TrimRight(log, "\x00"))
}

func readProgramInfoLog(id uint32) string {
	var logLength int32
	gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}

	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(id, logLength, nil, gl.Str(log))
	return strings.TrimSpace(strings.TrimRight(log, "\x00"))
}

func (prog *shaderProgram) Id() uint32 {
	return prog.glId
}

func (prog *shaderProgram) Bind() BoundShaderProgram {
	State.UseProgram(prog.glId)
	return BoundShaderProgram(prog)
}

func (prog *shaderProgram) Delete() {
	if State.Program == prog.glId {
		State.UseProgram(0)
	}
	gl.DeleteProgram(prog.glId)
	prog.glId = 0
}

func (prog *shaderProgram) GetUniformLocation(name string) int32 {
	if location, ok := prog.uniformLocations[name]; ok {
		return location
	}

	location := gl.GetUniformLocation(prog.glId, gl.Str(name+"\x00"))
	prog.uniformLocations[name] = location

	if location == -1 {
		log.Printf("%v shader: could not get location of %q\n", prog.name, name)
	}

	return location
}

// Sets a uniform of the bound program.
func (prog *shaderProgram) SetUniform(name string, value any) {
	location := prog.GetUniformLocation(name)
	if location == -1 {
		return
	}
	setUniformAny(location, value)
}

func setUniformAny(location int32, value any) {
	for refVal := reflect.ValueOf(value); refVal.Kind() == reflect.Ptr; refVal = reflect.ValueOf(value) {
		value = refVal.Elem().Interface()
	}

	switch v := value.(type) {
	case float32:
		gl.Uniform1f(location, v)
	case int:
		gl.Uniform1i(location, int32(v))
	case int32:
		gl.Uniform1i(location, v)
	case uint32:
		gl.Uniform1ui(location, v)
	case mgl32.Vec2:
		gl.Uniform2f(location, v.X(), v.Y())
	case mgl32.Vec3:
		gl.Uniform3f(location, v.X(), v.Y(), v.Z())
	case mgl32.Vec4:
		gl.Uniform4f(location, v.X(), v.Y(), v.Z(), v.W())
	case mgl32.Mat3:
		gl.UniformMatrix3fv(location, 1, false, &v[0])
	case mgl32.Mat4:
		gl.UniformMatrix4fv(location, 1, false, &v[0])
	default:
		log.Panicf("Unsupported type %T", value)
	}
}
