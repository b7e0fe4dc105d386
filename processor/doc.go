/*
Package processor provides code generation functionality for objectops.

The processor reads OpenAPI specifications with vendor extensions and
generates Go code for automatic class registration and key mapping.

OpenAPI Extension:
The processor looks for the x-objectstore-keymap vendor extension:

	GameScore:
	  type: object
	  x-objectstore-keymap:
	    PK: "GAMESCORE#{ObjectID}"
	    SK: "GAMESCORE#{ObjectID}"
	  properties:
	    objectId:
	      type: string
	    score:
	      type: integer

Generated Code:
The processor generates registration code:

	func init() {
	    registry.RegisterKeyMap[GameScore](map[string]string{
	        "PK": "GAMESCORE#{ObjectID}",
	        "SK": "GAMESCORE#{ObjectID}",
	    })

	    registry.RegisterClass("GameScore", func(item map[string]types.AttributeValue) (interface{}, error) {
	        var obj GameScore
	        err := attributevalue.UnmarshalMap(item, &obj)
	        return &obj, err
	    })
	}

This automation reduces boilerplate and ensures consistency between
the API specification and storage configuration.
*/
package processor
