package registry

import (
	"github.com/DOIDFoundation/corerpc/model"
	"github.com/DOIDFoundation/corerpc/v17"
	"github.com/DOIDFoundation/corerpc/v18"
	"github.com/DOIDFoundation/corerpc/v19"
	"github.com/DOIDFoundation/corerpc/v21"
	"github.com/DOIDFoundation/corerpc/v22"
	"github.com/DOIDFoundation/corerpc/v24"
	"github.com/DOIDFoundation/corerpc/v26"
	"github.com/DOIDFoundation/corerpc/v28"
)

func init() {
	// blockchain
	register("getbestblockhash", 17, conv[v17.GetBestBlockHash, model.GetBestBlockHash])
	register("getblockcount", 17, convInfallible[v17.GetBlockCount, model.GetBlockCount])
	register("getblockhash", 17, conv[v17.GetBlockHash, model.GetBlockHash])
	register("getblockchaininfo", 17, conv[v17.GetBlockchainInfo, model.GetBlockchainInfo])
	register("getblockchaininfo", 28, conv[v28.GetBlockchainInfo, model.GetBlockchainInfo])
	register("getmempoolinfo", 17, conv[v17.GetMempoolInfo, model.GetMempoolInfo])
	register("getmempoolinfo", 24, conv[v24.GetMempoolInfo, model.GetMempoolInfo])
	register("getmempoolentry", 17, conv[v17.GetMempoolEntry, model.GetMempoolEntry])
	register("getmempoolentry", 19, conv[v19.GetMempoolEntry, model.GetMempoolEntry])
	register("getmempoolentry", 21, conv[v21.GetMempoolEntry, model.GetMempoolEntry])
	register("getmempoolancestors", 17, conv[v17.GetMempoolAncestors, model.GetMempoolAncestors])
	register("getmempoolancestors_verbose", 17, conv[v17.GetMempoolAncestorsVerbose, model.GetMempoolAncestorsVerbose])
	register("getmempoolancestors_verbose", 19, conv[v19.GetMempoolAncestorsVerbose, model.GetMempoolAncestorsVerbose])
	register("getmempoolancestors_verbose", 21, conv[v21.GetMempoolAncestorsVerbose, model.GetMempoolAncestorsVerbose])
	register("getmempooldescendants", 17, conv[v17.GetMempoolDescendants, model.GetMempoolDescendants])
	register("getmempooldescendants_verbose", 17, conv[v17.GetMempoolDescendantsVerbose, model.GetMempoolDescendantsVerbose])
	register("getmempooldescendants_verbose", 19, conv[v19.GetMempoolDescendantsVerbose, model.GetMempoolDescendantsVerbose])
	register("getmempooldescendants_verbose", 21, conv[v21.GetMempoolDescendantsVerbose, model.GetMempoolDescendantsVerbose])
	register("getrawmempool", 17, conv[v17.GetRawMempool, model.GetRawMempool])
	register("getrawmempool_verbose", 17, conv[v17.GetRawMempoolVerbose, model.GetRawMempoolVerbose])
	register("getrawmempool_verbose", 19, conv[v19.GetRawMempoolVerbose, model.GetRawMempoolVerbose])
	register("getrawmempool_verbose", 21, conv[v21.GetRawMempoolVerbose, model.GetRawMempoolVerbose])
	register("gettxspendingprevout", 24, conv[v24.GetTxSpendingPrevout, model.GetTxSpendingPrevout])

	// mining
	register("getmininginfo", 17, conv[v17.GetMiningInfo, model.GetMiningInfo])
	register("generatetoaddress", 17, conv[v17.GenerateToAddress, model.GenerateToAddress])

	// network
	register("getnetworkinfo", 17, conv[v17.GetNetworkInfo, model.GetNetworkInfo])
	register("getnetworkinfo", 21, conv[v21.GetNetworkInfo, model.GetNetworkInfo])
	register("getnetworkinfo", 28, conv[v28.GetNetworkInfo, model.GetNetworkInfo])

	// raw transactions
	register("getrawtransaction", 17, conv[v17.GetRawTransaction, model.GetRawTransaction])
	register("sendrawtransaction", 17, conv[v17.SendRawTransaction, model.SendRawTransaction])
	register("testmempoolaccept", 17, conv[v17.TestMempoolAccept, model.TestMempoolAccept])
	register("testmempoolaccept", 21, conv[v21.TestMempoolAccept, model.TestMempoolAccept])
	register("testmempoolaccept", 22, conv[v22.TestMempoolAccept, model.TestMempoolAccept])

	// wallet
	register("getbalance", 17, conv[v17.GetBalance, model.GetBalance])
	register("getunconfirmedbalance", 17, conv[v17.GetUnconfirmedBalance, model.GetUnconfirmedBalance])
	register("getreceivedbyaddress", 17, conv[v17.GetReceivedByAddress, model.GetReceivedByAddress])
	register("getbalances", 19, conv[v19.GetBalances, model.GetBalances])
	register("getbalances", 26, conv[v26.GetBalances, model.GetBalances])
	register("getnewaddress", 17, conv[v17.GetNewAddress, model.GetNewAddress])
	register("getrawchangeaddress", 17, conv[v17.GetRawChangeAddress, model.GetRawChangeAddress])
	register("getaddressesbylabel", 17, conv[v17.GetAddressesByLabel, model.GetAddressesByLabel])
	register("getaddressinfo", 17, conv[v17.GetAddressInfo, model.GetAddressInfo])
	register("getaddressinfo", 18, conv[v18.GetAddressInfo, model.GetAddressInfo])
	register("gettransaction", 17, conv[v17.GetTransaction, model.GetTransaction])
	register("gettransaction", 26, conv[v26.GetTransaction, model.GetTransaction])
	register("getwalletinfo", 17, conv[v17.GetWalletInfo, model.GetWalletInfo])
	register("getwalletinfo", 26, conv[v26.GetWalletInfo, model.GetWalletInfo])
	register("bumpfee", 17, conv[v17.BumpFee, model.BumpFee])
	register("psbtbumpfee", 21, conv[v21.PsbtBumpFee, model.PsbtBumpFee])
	register("send", 21, conv[v21.Send, model.Send])
	register("walletprocesspsbt", 17, conv[v17.WalletProcessPsbt, model.WalletProcessPsbt])
	register("walletprocesspsbt", 26, conv[v26.WalletProcessPsbt, model.WalletProcessPsbt])
	register("sendtoaddress", 17, conv[v17.SendToAddress, model.SendToAddress])
	register("sendmany", 17, conv[v17.SendMany, model.SendMany])
	register("listunspent", 17, conv[v17.ListUnspent, model.ListUnspent])
	register("rescanblockchain", 17, conv[v17.RescanBlockchain, model.RescanBlockchain])
}
