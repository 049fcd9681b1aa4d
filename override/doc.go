// Package override parses defaults override arguments of the form
// [+|~]group[@pkg[:pkg2]][=value] into structured values for the
// composition engine.
package override
