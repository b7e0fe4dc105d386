/*
Package registry manages class registration and key mapping for objectops
backends.

The registry system enables:
  - Polymorphic object storage in a single DynamoDB table
  - Dynamic type resolution based on ClassName attributes
  - Flexible key patterns through key maps

Class Registry:
Maps class names to unmarshal functions:

	registry.RegisterClass("GameScore", func(item map[string]types.AttributeValue) (interface{}, error) {
	    var gs GameScore
	    err := attributevalue.UnmarshalMap(item, &gs)
	    return &gs, err
	})

Key Map Registry:
Associates Go types with backend key patterns:

	keyMap := map[string]string{
	    "PK": "GAMESCORE#{ObjectID}",
	    "SK": "GAMESCORE#{ObjectID}",
	}
	registry.RegisterKeyMap[GameScore](keyMap)

The registry is thread-safe and should be populated during initialization,
typically in init() functions or through generated code (see the processor
package and the classmap tool).
*/
package registry
