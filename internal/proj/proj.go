package proj

/*
#cgo darwin pkg-config: proj
#cgo !darwin LDFLAGS: -lproj
#include <stdlib.h>
#include <proj.h>

static int pjnull(PJ *pj) {
	return pj == NULL;
}
*/
import "C"

import (
	"errors"
	"math"
	"runtime"
	"unsafe"
)

// Context owns every PJ object created through it.
type Context struct {
	pj_context *C.PJ_CONTEXT
	opened     bool
	counter    uint64
	objects    map[uint64]*PJ
}

// A PROJ object: either a CRS or a coordinate operation
type PJ struct {
	pj      *C.PJ
	context *Context
	index   uint64
	opened  bool
}

type LibInfo struct {
	Major   int    // Major version number.
	Minor   int    // Minor version number.
	Patch   int    // Patch level of release.
	Release string // Release info, e.g. “Rel. 9.4.0, March 1st, 2024”.
	Version string // Text representation of the full version number, e.g. “9.4.0”.
}

// The direction of a transformation
type Direction C.PJ_DIRECTION

const (
	Fwd = Direction(C.PJ_FWD) // Forward transformation
	Inv = Direction(C.PJ_INV) // Inverse transformation
)

var (
	errContextClosed    = errors.New("Context is closed")
	errDataSizeMismatch = errors.New("Data size mismatch")
	errObjectClosed     = errors.New("PROJ object is closed")
)

// Create a context
func NewContext() *Context {
	ctx := Context{
		pj_context: C.proj_context_create(),
		objects:    make(map[uint64]*PJ),
		opened:     true,
	}
	runtime.SetFinalizer(&ctx, (*Context).Close)
	return &ctx
}

// Close a context and every object created through it
func (ctx *Context) Close() {
	if !ctx.opened {
		return
	}
	for i, p := range ctx.objects {
		if p.opened {
			C.proj_destroy(p.pj)
			p.context = nil
			p.opened = false
		}
		delete(ctx.objects, i)
	}
	C.proj_context_destroy(ctx.pj_context)
	ctx.pj_context = nil
	ctx.opened = false
}

func (ctx *Context) errno() error {
	e := C.proj_context_errno(ctx.pj_context)
	if e == 0 {
		return errors.New("unknown PROJ error")
	}
	return errors.New(C.GoString(C.proj_context_errno_string(ctx.pj_context, e)))
}

func (ctx *Context) track(pj *C.PJ) *PJ {
	p := PJ{
		opened:  true,
		context: ctx,
		index:   ctx.counter,
		pj:      pj,
	}
	ctx.objects[ctx.counter] = &p
	ctx.counter++
	runtime.SetFinalizer(&p, (*PJ).Close)
	return &p
}

// Create an object from a definition: a proj-string, WKT, or an
// "AUTHORITY:CODE" identifier such as "EPSG:4301"
func (ctx *Context) Create(definition string) (*PJ, error) {
	if !ctx.opened {
		return nil, errContextClosed
	}

	cs := C.CString(definition)
	defer C.free(unsafe.Pointer(cs))
	pj := C.proj_create(ctx.pj_context, cs)
	if C.pjnull(pj) != 0 {
		return nil, ctx.errno()
	}
	return ctx.track(pj), nil
}

// Create a transformation between two CRS definitions. The returned operation
// takes and returns coordinates in longitude, latitude order, whatever the
// axis order of the CRS definitions is.
func (ctx *Context) CreateCRSToCRS(source, target string) (*PJ, error) {
	if !ctx.opened {
		return nil, errContextClosed
	}

	src := C.CString(source)
	defer C.free(unsafe.Pointer(src))
	tgt := C.CString(target)
	defer C.free(unsafe.Pointer(tgt))

	pj := C.proj_create_crs_to_crs(ctx.pj_context, src, tgt, nil)
	if C.pjnull(pj) != 0 {
		return nil, ctx.errno()
	}
	norm := C.proj_normalize_for_visualization(ctx.pj_context, pj)
	C.proj_destroy(pj)
	if C.pjnull(norm) != 0 {
		return nil, ctx.errno()
	}
	return ctx.track(norm), nil
}

// Close an object
func (p *PJ) Close() {
	if p.opened {
		C.proj_destroy(p.pj)
		if p.context.opened {
			delete(p.context.objects, p.index)
		}
		p.context = nil
		p.opened = false
	}
}

// Name of the object, e.g. “Tokyo” for EPSG:4301
func (p *PJ) Name() (string, error) {
	if !p.opened {
		return "", errObjectClosed
	}
	return C.GoString(C.proj_get_name(p.pj)), nil
}

// First identifier of the object as authority and code, e.g. “EPSG” and “4301”.
// Both are empty if the object carries no identifier.
func (p *PJ) ID() (auth, code string, err error) {
	if !p.opened {
		return "", "", errObjectClosed
	}
	auth = C.GoString(C.proj_get_id_auth_name(p.pj, 0))
	code = C.GoString(C.proj_get_id_code(p.pj, 0))
	return auth, code, nil
}

// Transform a series of coordinates given as parallel slices of equal length.
// The input slices are not modified.
func (p *PJ) TransSlice(direction Direction, u1, v1 []float64) (u2, v2 []float64, err error) {
	if !p.opened {
		return nil, nil, errObjectClosed
	}
	if len(u1) != len(v1) {
		return nil, nil, errDataSizeMismatch
	}
	n := len(u1)
	if n == 0 {
		return []float64{}, []float64{}, nil
	}

	u := make([]C.double, n)
	v := make([]C.double, n)
	for i := 0; i < n; i++ {
		u[i] = C.double(u1[i])
		v[i] = C.double(v1[i])
	}

	st := C.size_t(C.sizeof_double)
	nc := C.size_t(n)

	C.proj_errno_reset(p.pj)
	C.proj_trans_generic(
		p.pj,
		C.PJ_DIRECTION(direction),
		&u[0], st, nc,
		&v[0], st, nc,
		nil, 0, 0,
		nil, 0, 0)

	if e := C.proj_errno(p.pj); e != 0 {
		return nil, nil, errors.New(C.GoString(C.proj_context_errno_string(p.context.pj_context, e)))
	}

	u2 = make([]float64, n)
	v2 = make([]float64, n)
	for i := 0; i < n; i++ {
		u2[i] = float64(u[i])
		v2[i] = float64(v[i])
		if math.IsInf(u2[i], 0) || math.IsInf(v2[i], 0) {
			return nil, nil, errors.New("coordinate outside the domain of the transformation")
		}
	}
	return u2, v2, nil
}

// Get information about the current instance of the PROJ library
func Info() LibInfo {
	info := C.proj_info()
	return LibInfo{
		Major:   int(info.major),
		Minor:   int(info.minor),
		Patch:   int(info.patch),
		Release: C.GoString(info.release),
		Version: C.GoString(info.version),
	}
}
