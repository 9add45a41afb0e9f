package utils

// AttributeMap is a loosely typed set of configuration attributes, as found in a JSON document.
type AttributeMap map[string]interface{}
