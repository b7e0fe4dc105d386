/*
Package opmodels defines the data structures shared by objectops handles.

Key Types:

Options:
The pass-through configuration bag accepted by every facade operation.
Recognized keys are defined entirely by the backend the handle belongs to;
the facade never inspects it:

	opts := &opmodels.Options{
	    UseMasterKey: true,
	    SessionToken: "r:9b2a...",
	}

QueryParams:
Parameters for a query handle against the DynamoDB reference backend:

	params := &QueryParams{
	    KeyConditionExpression: "PK = :pk",
	    ExpressionAttributeValues: map[string]types.AttributeValue{
	        ":pk": &types.AttributeValueMemberS{Value: "GAMESCORE"},
	    },
	    FilterExpression: aws.String("Score > :min"),
	    Limit:            aws.Int32(100),
	}

StreamResult:
Results from streaming finds with metadata:

	type StreamResult[T any] struct {
	    Item  T                               // The typed object
	    Raw   map[string]types.AttributeValue // Raw DynamoDB attributes
	    Error error                           // Item-specific error, if any
	    Meta  StreamMeta                      // Metadata about this item
	}

StreamOptions:
Configuration for streaming behavior:

	opts := []StreamOption{
	    WithBufferSize(100),
	    WithPageSize(25),
	    WithMaxRetries(3),
	    WithProgressHandler(progressFunc),
	}

These types provide a consistent surface across backend implementations.
*/
package opmodels
