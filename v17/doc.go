/*
Package v17 holds the wire types of daemon release 0.17 and the conversion of
each into its version independent form from package model.

Every wire type mirrors the JSON reply of one RPC method exactly, so fields are
strings where the daemon sends hex or text, json.Number where it sends a
decimal bitcoin amount and wide integers where it sends a count. Calling
IntoModel parses everything once; it either returns a fully valid model value
or an error naming the field that failed, never a partial result.

Later version packages alias the types defined here for every method whose
reply did not change.

# Methods

== Blockchain ==
  - getbestblockhash, getblockchaininfo, getblockcount, getblockhash
  - getmempoolancestors, getmempooldescendants, getmempoolentry,
    getmempoolinfo, getrawmempool

== Mining ==
  - generatetoaddress, getmininginfo

== Network ==
  - getnetworkinfo

== Raw transactions ==
  - getrawtransaction, sendrawtransaction, testmempoolaccept

== Wallet ==
  - bumpfee, getaddressesbylabel, getaddressinfo, getbalance,
    getnewaddress, getrawchangeaddress, getreceivedbyaddress,
    gettransaction, getunconfirmedbalance, getwalletinfo, listunspent,
    rescanblockchain, sendmany, sendtoaddress, walletprocesspsbt
*/
package v17
