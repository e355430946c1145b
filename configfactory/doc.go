// Package configfactory implements the configuration array factory: it
// parses or loads configuration files, resolves extends (core presets,
// plugin-provided presets, and shareable config packages), loads parsers
// and plugins, flattens overrides into a flat element stream, and
// assembles the resulting elements into a configarray.Array, optionally
// composed on top of a parent array.
//
// Four collaborators are interface-only and supplied by the caller,
// matching the scope boundary of the subsystem this package implements:
// Resolver (module resolution for shareable configs, plugins, and
// parsers), SchemaValidator (body and element schema checks),
// FileSystem (reading configuration files off disk), and ModuleLoader
// (loading a dynamically-loadable configuration file, or a parser/plugin
// module, once its path has been resolved). A stdlib-only default is
// installed for FileSystem (OSFS). Package fsresolve offers a stdlib-only
// Resolver, which a caller passes explicitly: New installs no Resolver.
// SchemaValidator and ModuleLoader have no default because this package
// never needs a concrete schema or a concrete dynamic-loading mechanism
// to satisfy any of its own operations — a caller that needs either
// supplies one.
package configfactory
