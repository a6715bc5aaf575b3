package sdkgen

import "github.com/logscore/borea/internal/openapi"

// AnnotateCodeSamples injects an "x-codeSamples" array into every operation
// of doc that has a matching entry in operations, grounded in the original
// tool's per-operation code-sample annotation of the copied openapi.json.
// doc is mutated in place and also returned for chaining.
func AnnotateCodeSamples(doc openapi.RawValue, operations []openapi.Operation, modulePath string) openapi.RawValue {
	byKey := make(map[[2]string]openapi.Operation, len(operations))
	for _, op := range operations {
		byKey[[2]string{op.Path, op.Method}] = op
	}

	pathsVal, ok := doc.Get("paths")
	if !ok || pathsVal.Kind != openapi.KindObject {
		return doc
	}

	for _, path := range pathsVal.Keys {
		pathItem := pathsVal.Fields[path]
		if pathItem.Kind != openapi.KindObject {
			continue
		}
		for _, method := range pathItem.Keys {
			details := pathItem.Fields[method]
			if details.Kind != openapi.KindObject {
				continue
			}
			op, found := byKey[[2]string{path, methodUpper(method)}]
			if !found {
				continue
			}
			// details and pathItem were read out of their parent maps by
			// value, so Set's mutation has to be written back into each
			// parent's Fields map explicitly — an object node's Keys slice
			// otherwise only grows on the local copy.
			details.Set("x-codeSamples", codeSample(op, modulePath))
			pathItem.Fields[method] = details
		}
		pathsVal.Fields[path] = pathItem
	}

	return doc
}

func methodUpper(s string) string {
	out := []byte(s)
	for i, b := range out {
		if b >= 'a' && b <= 'z' {
			out[i] = b - 'a' + 'A'
		}
	}
	return string(out)
}

func codeSample(op openapi.Operation, modulePath string) openapi.RawValue {
	tagPkg := openapi.CleanFileName(op.Tag)
	if op.Tag == "" {
		tagPkg = defaultTagName
	}
	opPkg := openapi.CleanFileName(op.OperationID)
	source := "method, url := client." + openapi.CleanClassName(tagPkg) + "." + openapi.CleanClassName(op.OperationID) + "(" + opPkg + ".Request{})"

	sample := openapi.RawValue{Kind: openapi.KindObject, Fields: map[string]openapi.RawValue{}}
	sample.Set("lang", openapi.RawValue{Kind: openapi.KindString, Str: "go"})
	sample.Set("label", openapi.RawValue{Kind: openapi.KindString, Str: openapi.CleanClassName(op.OperationID)})
	sample.Set("source", openapi.RawValue{Kind: openapi.KindString, Str: source})

	return openapi.RawValue{Kind: openapi.KindArray, Arr: []openapi.RawValue{sample}}
}
