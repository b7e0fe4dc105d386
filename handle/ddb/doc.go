/*
Package ddb provides a DynamoDB implementation of the handle interfaces.

A Store holds the table name and up to two clients: the standard client with
application credentials, and an optional master client with elevated
credentials. Every operation selects its client from the forwarded options —
calling with Options.UseMasterKey on a store without master credentials
fails with errors.ErrMasterKeyRequired.

	store, _ := ddb.NewStore(accessKey, secretKey, region, table)
	store.WithMasterCredentials(masterAccessKey, masterSecretKey, region)

Record handles address a single object; keys are built from the type's
registered key map using macro expansion:

	registry.RegisterKeyMap[GameScore](map[string]string{
	    "PK": "GAMESCORE#{ObjectID}",   // Becomes "GAMESCORE#xWMyZ4YEGZ"
	    "SK": "GAMESCORE#{ObjectID}",
	})

	h := ddb.NewObjectHandle[GameScore](store, "xWMyZ4YEGZ")
	h, err := objectops.Fetch(ctx, h, nil)

Query handles carry a DynamoDB query specification:

	q := ddb.NewQueryHandle[GameScore](store, &opmodels.QueryParams{
	    KeyConditionExpression: "PK = :pk",
	    ExpressionAttributeValues: map[string]types.AttributeValue{
	        ":pk": &types.AttributeValueMemberS{Value: "GAMESCORE#xWMyZ4YEGZ"},
	    },
	})
	n, err := objectops.Count(ctx, q, &opmodels.Options{UseMasterKey: true})

Streaming:
FindStream supports configurable options for large result sets:

	results := q.FindStream(ctx, nil,
	    opmodels.WithBufferSize(100),
	    opmodels.WithPageSize(25),
	    opmodels.WithMaxRetries(3),
	    opmodels.WithProgressHandler(func(p opmodels.StreamProgress) {
	        log.Printf("Processed %d items", p.ItemsProcessed)
	    }),
	)

For usage examples, see the integration tests.
*/
package ddb
