/*Package render holds the declarative configuration for producing images and
videos of molecular structures through an external renderer, and the process
boundary that hands a validated configuration over to it.

The renderer runs as a separate process. The only state that crosses the
boundary is the transport artifact: a compressed snapshot of the full
configuration, written to the path in the pickle field and passed to the
renderer executable as its single argument. The renderer reads the structure
file named inside the artifact on its own; this package never parses
structure files.

A configuration is built once per render invocation: start from
DefaultConfig, merge overrides (an in-memory mapping or a YAML document) over
it, validate, and hand it to a Blender handle. Merging is strict: a key that
is not part of the schema fails immediately, naming the full key path, so
typos never pass silently. Validation aggregates every violation into one
report instead of stopping at the first.*/
package render
