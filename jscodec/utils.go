package jscodec

import "strings"

type helper struct {
	name string
	deps []string
	code string
}

// helpers is emitted in slice order; deps must name earlier or later
// entries of this slice only.
var helpers = []helper{
	{
		name: "Deserializer",
		code: `class Deserializer {
    source
    offset

    constructor(bytes) {
        this.source = bytes
        this.offset = 0
    }

    pop() {
        if (this.offset >= this.source.length) {
            throw new Error('unexpected end of input')
        }
        return this.source[this.offset++]
    }

    try_take_n(len) {
        const out = this.source.slice(this.offset, this.offset + len)
        if (out.length !== len) {
            throw new Error('unexpected end of input')
        }
        this.offset += len
        return out
    }
}
`,
	},
	{
		name: "serializeVarint32",
		code: `function serializeVarint32(out, val) {
    let v = val >>> 0
    while (v >= 0x80) {
        out.push((v & 0x7f) | 0x80)
        v >>>= 7
    }
    out.push(v)
}
`,
	},
	{
		name: "deserializeVarint32",
		code: `function deserializeVarint32(de) {
    let out = 0
    for (let i = 0; i < 5; i++) {
        const b = de.pop()
        if (i === 4 && b > 0x0f) {
            throw new Error('varint overflows u32')
        }
        out |= (b & 0x7f) << (i * 7)
        if ((b & 0x80) === 0) {
            return out >>> 0
        }
    }
    throw new Error('varint overflows u32')
}
`,
	},
	{
		name: "serializeVarintBig",
		code: `function serializeVarintBig(out, bits, val) {
    let v = BigInt.asUintN(bits, BigInt(val))
    while (v >= 0x80n) {
        out.push(Number(v & 0x7fn) | 0x80)
        v >>= 7n
    }
    out.push(Number(v))
}
`,
	},
	{
		name: "deserializeVarintBig",
		code: `function deserializeVarintBig(de, bits) {
    let out = 0n
    let shift = 0n
    for (;;) {
        const b = de.pop()
        out |= BigInt(b & 0x7f) << shift
        if ((b & 0x80) === 0) {
            return BigInt.asUintN(bits, out)
        }
        shift += 7n
        if (shift >= BigInt(bits + 7)) {
            throw new Error('varint overflows u' + bits)
        }
    }
}
`,
	},
	{
		name: "serializeBool",
		code: `function serializeBool(out, val) {
    out.push(val ? 1 : 0)
}
`,
	},
	{
		name: "deserializeBool",
		code: `function deserializeBool(de) {
    const b = de.pop()
    if (b > 1) {
        throw new Error('invalid bool ' + b)
    }
    return b === 1
}
`,
	},
	{
		name: "serializeU8",
		code: `function serializeU8(out, val) {
    out.push(val & 0xff)
}
`,
	},
	{
		name: "deserializeU8",
		code: `function deserializeU8(de) {
    return de.pop()
}
`,
	},
	{
		name: "serializeS8",
		code: `function serializeS8(out, val) {
    out.push(val & 0xff)
}
`,
	},
	{
		name: "deserializeS8",
		code: `function deserializeS8(de) {
    return (de.pop() << 24) >> 24
}
`,
	},
	{
		name: "serializeU16",
		deps: []string{"serializeVarint32"},
		code: `function serializeU16(out, val) {
    serializeVarint32(out, val & 0xffff)
}
`,
	},
	{
		name: "deserializeU16",
		deps: []string{"deserializeVarint32"},
		code: `function deserializeU16(de) {
    const v = deserializeVarint32(de)
    if (v > 0xffff) {
        throw new Error('value overflows u16')
    }
    return v
}
`,
	},
	{
		name: "serializeU32",
		deps: []string{"serializeVarint32"},
		code: `function serializeU32(out, val) {
    serializeVarint32(out, val)
}
`,
	},
	{
		name: "deserializeU32",
		deps: []string{"deserializeVarint32"},
		code: `function deserializeU32(de) {
    return deserializeVarint32(de)
}
`,
	},
	{
		name: "serializeS16",
		deps: []string{"serializeVarint32"},
		code: `function serializeS16(out, val) {
    serializeVarint32(out, ((val << 1) ^ (val >> 15)) & 0xffff)
}
`,
	},
	{
		name: "deserializeS16",
		deps: []string{"deserializeVarint32"},
		code: `function deserializeS16(de) {
    const n = deserializeVarint32(de)
    if (n > 0xffff) {
        throw new Error('value overflows s16')
    }
    return (n >>> 1) ^ -(n & 1)
}
`,
	},
	{
		name: "serializeS32",
		deps: []string{"serializeVarint32"},
		code: `function serializeS32(out, val) {
    serializeVarint32(out, (val << 1) ^ (val >> 31))
}
`,
	},
	{
		name: "deserializeS32",
		deps: []string{"deserializeVarint32"},
		code: `function deserializeS32(de) {
    const n = deserializeVarint32(de)
    return (n >>> 1) ^ -(n & 1)
}
`,
	},
	{
		name: "serializeU64",
		deps: []string{"serializeVarintBig"},
		code: `function serializeU64(out, val) {
    serializeVarintBig(out, 64, val)
}
`,
	},
	{
		name: "deserializeU64",
		deps: []string{"deserializeVarintBig"},
		code: `function deserializeU64(de) {
    return deserializeVarintBig(de, 64)
}
`,
	},
	{
		name: "serializeS64",
		deps: []string{"serializeVarintBig"},
		code: `function serializeS64(out, val) {
    const v = BigInt(val)
    serializeVarintBig(out, 64, (v << 1n) ^ (v >> 63n))
}
`,
	},
	{
		name: "deserializeS64",
		deps: []string{"deserializeVarintBig"},
		code: `function deserializeS64(de) {
    const n = deserializeVarintBig(de, 64)
    return BigInt.asIntN(64, (n >> 1n) ^ -(n & 1n))
}
`,
	},
	{
		name: "serializeU128",
		deps: []string{"serializeVarintBig"},
		code: `function serializeU128(out, val) {
    serializeVarintBig(out, 128, val)
}
`,
	},
	{
		name: "deserializeU128",
		deps: []string{"deserializeVarintBig"},
		code: `function deserializeU128(de) {
    return deserializeVarintBig(de, 128)
}
`,
	},
	{
		name: "serializeS128",
		deps: []string{"serializeVarintBig"},
		code: `function serializeS128(out, val) {
    const v = BigInt(val)
    serializeVarintBig(out, 128, (v << 1n) ^ (v >> 127n))
}
`,
	},
	{
		name: "deserializeS128",
		deps: []string{"deserializeVarintBig"},
		code: `function deserializeS128(de) {
    const n = deserializeVarintBig(de, 128)
    return BigInt.asIntN(128, (n >> 1n) ^ -(n & 1n))
}
`,
	},
	{
		name: "serializeF32",
		code: `function serializeF32(out, val) {
    const buf = new DataView(new ArrayBuffer(4))
    buf.setFloat32(0, val, true)
    out.push(...new Uint8Array(buf.buffer))
}
`,
	},
	{
		name: "deserializeF32",
		code: `function deserializeF32(de) {
    const bytes = de.try_take_n(4)
    return new DataView(bytes.buffer).getFloat32(0, true)
}
`,
	},
	{
		name: "serializeF64",
		code: `function serializeF64(out, val) {
    const buf = new DataView(new ArrayBuffer(8))
    buf.setFloat64(0, val, true)
    out.push(...new Uint8Array(buf.buffer))
}
`,
	},
	{
		name: "deserializeF64",
		code: `function deserializeF64(de) {
    const bytes = de.try_take_n(8)
    return new DataView(bytes.buffer).getFloat64(0, true)
}
`,
	},
	{
		name: "serializeString",
		deps: []string{"serializeVarint32"},
		code: `function serializeString(out, val) {
    const bytes = new TextEncoder().encode(val)
    serializeVarint32(out, bytes.length)
    for (const b of bytes) {
        out.push(b)
    }
}
`,
	},
	{
		name: "deserializeString",
		deps: []string{"deserializeVarint32"},
		code: `function deserializeString(de) {
    const len = deserializeVarint32(de)
    return new TextDecoder('utf-8', { fatal: true }).decode(de.try_take_n(len))
}
`,
	},
	{
		name: "serializeChar",
		deps: []string{"serializeString"},
		code: `function serializeChar(out, val) {
    if ([...val].length !== 1) {
        throw new Error('char must be exactly one code point')
    }
    serializeString(out, val)
}
`,
	},
	{
		name: "deserializeChar",
		deps: []string{"deserializeString"},
		code: `function deserializeChar(de) {
    const val = deserializeString(de)
    if ([...val].length !== 1) {
        throw new Error('char must be exactly one code point')
    }
    return val
}
`,
	},
	{
		name: "serializeUint8Array",
		deps: []string{"serializeVarint32"},
		code: `function serializeUint8Array(out, val) {
    serializeVarint32(out, val.length)
    for (const b of val) {
        out.push(b)
    }
}
`,
	},
	{
		name: "deserializeUint8Array",
		deps: []string{"deserializeVarint32"},
		code: `function deserializeUint8Array(de) {
    const len = deserializeVarint32(de)
    return de.try_take_n(len)
}
`,
	},
	{
		name: "serializeList",
		deps: []string{"serializeVarint32"},
		code: `function serializeList(out, inner, val) {
    serializeVarint32(out, val.length)
    for (const v of val) {
        inner(out, v)
    }
}
`,
	},
	{
		name: "deserializeList",
		deps: []string{"deserializeVarint32"},
		code: `function deserializeList(de, inner) {
    const len = deserializeVarint32(de)
    const out = []
    for (let i = 0; i < len; i++) {
        out.push(inner(de))
    }
    return out
}
`,
	},
	{
		name: "serializeOption",
		code: `function serializeOption(out, inner, val) {
    if (val === null || val === undefined) {
        out.push(0)
        return
    }
    out.push(1)
    inner(out, val)
}
`,
	},
	{
		name: "deserializeOption",
		code: `function deserializeOption(de, inner) {
    const tag = de.pop()
    switch (tag) {
        case 0:
            return null
        case 1:
            return inner(de)
        default:
            throw new Error('unknown option case ' + tag)
    }
}
`,
	},
	{
		name: "serializeResult",
		deps: []string{"serializeVarint32"},
		code: `function serializeResult(out, ok, err, val) {
    switch (val.tag) {
        case 'ok':
            serializeVarint32(out, 0)
            ok(out, val.val)
            break
        case 'err':
            serializeVarint32(out, 1)
            err(out, val.val)
            break
        default:
            throw new Error('unknown result case ' + val.tag)
    }
}
`,
	},
	{
		name: "deserializeResult",
		deps: []string{"deserializeVarint32"},
		code: `function deserializeResult(de, ok, err) {
    const tag = deserializeVarint32(de)
    switch (tag) {
        case 0:
            return { tag: 'ok', val: ok(de) }
        case 1:
            return { tag: 'err', val: err(de) }
        default:
            throw new Error('unknown result case ' + tag)
    }
}
`,
	},
}

var helperIndex = func() map[string]int {
	m := make(map[string]int, len(helpers))
	for i, h := range helpers {
		m[h.name] = i
	}
	return m
}()

// Utils returns the helpers referenced so far and their dependencies.
func (p *Printer) Utils() string {
	need := make([]bool, len(helpers))
	var visit func(name string)
	visit = func(name string) {
		i, ok := helperIndex[name]
		if !ok || need[i] {
			return
		}
		need[i] = true
		for _, d := range helpers[i].deps {
			visit(d)
		}
	}
	for name := range p.used {
		visit(name)
	}

	var b strings.Builder
	for i, h := range helpers {
		if need[i] {
			b.WriteString(h.code)
		}
	}
	return b.String()
}
