// Package yaml_adapter provides the YAML implementation of the declaration
// Decoder and Encoder interfaces defined in the `config` package.
//
//	enumerations:
//	  - name: ServerState
//	    id: "ns=0;i=852"
//	    values:
//	      - {name: Running, value: 0}
//	structures:
//	  - name: BuildInfo
//	    id: {namespace: 0, numeric: 338}
//	    fields:
//	      - {name: ProductUri, type: String}
package yaml_adapter
