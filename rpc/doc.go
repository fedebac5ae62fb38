/*
RPC implementation in corerpc is based on
[github.com/ethereum/go-ethereum/rpc] that follows JSON-RPC 2.0. It serves
the daemon replies converted into the release independent model types.

# Example

request:

	{"jsonrpc": "2.0", "method": "core_convert", "params": ["getblockcount", 25, 800000], "id": 1}

response:

	{"jsonrpc":"2.0","id":1,"result":800000}

request:

	{"jsonrpc": "2.0", "method": "core_call", "params": ["getmempoolentry", ["d4a1...e1f0"]], "id": 2}

response:

	{"jsonrpc":"2.0","id":2,"result":{"vsize":141,"weight":561,"time":1700000000,"height":800000,...}}

# Request

`method` in request is defined in `{namespace}_{methodName}` format where
  - `namespace` is defined when registering a struct by calling [RPC.RegisterName],
    `API List` below shows namespaces and corresponding structs
  - `methodName` is public methods of the struct in uncapitalized form

`params` are the parameters of the public method

# Response

`result` in response is the return values of the public method

# Subscriptions

Subscription is supported in websocket streams, served on the websocket path
of [Config] ("/ws" by default).

Method is defined in `{namespace}_subscribe` format. First param is
uncapitalized public method name that returns a
[github.com/ethereum/go-ethereum/rpc.Subscription]

For example:

	{"jsonrpc": "2.0", "method": "watch_subscribe", "params": ["newEntries"], "id": 1}

will execute [github.com/DOIDFoundation/corerpc/watch.SubAPI.NewEntries]

Result will be like:

	{"jsonrpc":"2.0","id":1,"result":"0xd37be67a9aaa143969d24cada292a445"}
	{"jsonrpc":"2.0","method":"watch_subscription","params":{"subscription":"0xd37be67a9aaa143969d24cada292a445","result":{"txid":"d4a1...e1f0","entry":{"vsize":141,...}}}}

# API List

Here are the namespaces and their corresponding structs, methods can be found
from the public methods of each struct.

`core`
  - conversion apis [API]
  - conversion failure subscriptions [SubAPI]

`node`
  - [github.com/DOIDFoundation/corerpc/node.API]

`watch`
  - mempool apis [github.com/DOIDFoundation/corerpc/watch.API]
  - mempool subscriptions [github.com/DOIDFoundation/corerpc/watch.SubAPI]
*/
package rpc
